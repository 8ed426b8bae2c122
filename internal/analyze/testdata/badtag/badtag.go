package badtag

type Broken struct {
	Total int64 `orm:"Column(name=total"`
}
