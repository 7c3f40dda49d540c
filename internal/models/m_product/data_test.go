package m_product

import (
	"math/big"
	"strings"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWriteParams_EmptyStringsBecomeNull(t *testing.T) {
	params := BuildWriteParams("Sample Laptop", "", big.NewRat(129999, 100), "")

	assert.Equal(t, "Sample Laptop", params[ColName])
	assert.Equal(t, spanner.NullString{}, params[ColDescription])
	assert.Equal(t, spanner.NullString{}, params[ColImageURL])

	price, ok := params[ColPrice].(spanner.NullNumeric)
	require.True(t, ok, "price must be a NUMERIC parameter")
	assert.True(t, price.Valid)
	assert.Equal(t, "1299.99", price.Numeric.FloatString(2))
}

func TestInsertStatement_ReturnsGeneratedID(t *testing.T) {
	stmt := InsertStatement(BuildWriteParams("n", "d", big.NewRat(1, 1), ""))

	assert.Contains(t, stmt.SQL, "PENDING_COMMIT_TIMESTAMP()")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(stmt.SQL), "THEN RETURN product_id"))
	assert.NotContains(t, stmt.Params, ColProductID)
}

func TestUpdateStatement_DoesNotTouchCreatedAtOrCallerParams(t *testing.T) {
	params := BuildWriteParams("n", "d", big.NewRat(1, 1), "https://x/y.png")
	stmt := UpdateStatement(9, params)

	assert.NotContains(t, stmt.SQL, ColCreatedAt)
	assert.Equal(t, int64(9), stmt.Params[ColProductID])
	assert.NotContains(t, params, ColProductID)
	assert.Equal(t, spanner.NullString{StringVal: "https://x/y.png", Valid: true}, stmt.Params[ColImageURL])
}

func TestListStatement_NewestFirst(t *testing.T) {
	stmt := ListStatement(50)

	assert.Contains(t, stmt.SQL, "ORDER BY created_at DESC, product_id DESC")
	assert.Equal(t, int64(50), stmt.Params["limit"])
}
