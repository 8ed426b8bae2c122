package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"order_seq", "order_seq", 0},
		{"seq", "sqe", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "orderseq", NormalizeIdent("Order_Seq"))
	assert.Equal(t, "orderseq", NormalizeIdent("order-seq"))
	assert.Equal(t, "shoporder", NormalizeIdent("shop.Order"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("OrderSeq", "order_seq"), 0.0001)
	assert.InDelta(t, 1.0, Similarity("", ""), 0.0001)
	assert.Less(t, Similarity("order_seq", "customer_table"), 0.5)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"customer_seq", "order_seq", "order_sequence", "invoice_table", "order_seq"}

	got := Suggest("ordr_seq", candidates, 2)
	assert.Equal(t, []string{"order_seq", "order_sequence"}, got)

	assert.Empty(t, Suggest("zzz", candidates, 3))
	assert.Empty(t, Suggest("order_seq", nil, 3))
}
