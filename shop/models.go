package shop

import (
	"time"
)

// PackageMapping carries the package-level mapping annotations.
type PackageMapping struct {
	_ struct{} `orm:"SequenceGenerator(name=shop_seq,sequenceName=shop_sequence,allocationSize=25)"`
}

// Customer represents the user placing orders.
type Customer struct {
	_ struct{} `orm:"Entity;Table(name=customers)"`

	ID       int64   `orm:"Id;GeneratedValue(strategy=IDENTITY)"`
	Email    string  `orm:"Column(name=email,unique=true,nullable=false)"`
	FullName string  `orm:"Nationalized;Column(name=full_name)"`
	Address  Address `orm:"Embedded"`
	IsActive bool
	Version  int `orm:"Version;Source(value=DB)"`
}

// Address is embedded into its owner's table. It has no mapping of its own.
type Address struct {
	Street string
	City   string
}

// Order represents a transaction made by a customer.
type Order struct {
	_ struct{} `orm:"Entity;Table(name=orders,schema=sales);RowId(value=ctid)"`

	ID         int64      `orm:"Id;GeneratedValue(strategy=SEQUENCE,generator=shop_seq)"`
	Customer   *Customer  `orm:"ManyToOne"`
	Status     Status     `orm:"Enumerated(value=STRING)"`
	TotalCents int64      `orm:"Column(name=total_cents,nullable=false)"`
	Notes      string     `orm:"Lob;Basic(fetch=LAZY)"`
	Items      []LineItem `orm:"OneToMany"`
	OrderedAt  time.Time  `orm:"Temporal(value=DATE)"`
	Currency   Currency
	draft      bool
	Scratch    string `orm:"-"`
}

// RushOrder is an order shipped with priority. It extends Order.
type RushOrder struct {
	Order
	_ struct{} `orm:"Entity"`

	PriorityFee int64 `orm:"Column(name=priority_fee)"`
}

// LineItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type LineItem struct {
	_ struct{} `orm:"Entity;Table(name=line_items);TableGenerator(name=line_ids,table=id_blocks,pkColumnValue=line_item)"`

	ID        int64  `orm:"Id;GeneratedValue(strategy=TABLE,generator=line_ids)"`
	Order     *Order `orm:"ManyToOne"`
	SKU       string `orm:"Column(name=sku,nullable=false)"`
	Quantity  int
	UnitPrice int64 `orm:"ColumnTransformer(read='unit_price / 100',write='? * 100')"`
}

// Snapshot is a read model with no mapping annotations. It is not an entity.
type Snapshot struct {
	OrderID int64
	Total   int64
}

// Status is the lifecycle state of an order.
type Status int

const (
	StatusPending Status = iota
	StatusPaid
	StatusShipped
	StatusCancelled
)

// Currency is an ISO 4217 code. It declares no constants and is not an enum.
type Currency string
