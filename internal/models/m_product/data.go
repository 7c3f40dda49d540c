package m_product

import (
	"fmt"
	"math/big"
	"strings"

	"cloud.google.com/go/spanner"
)

// BuildWriteParams prepares the canonical parameters shared by insert and full update.
// Empty description and image reference are stored as NULL.
func BuildWriteParams(name, description string, price *big.Rat, imageURL string) map[string]interface{} {
	return map[string]interface{}{
		ColName:        name,
		ColDescription: nullString(description),
		ColPrice:       spanner.NullNumeric{Numeric: *price, Valid: true},
		ColImageURL:    nullString(imageURL),
	}
}

// InsertStatement builds the DML that inserts a product and returns the generated id.
// created_at is stamped with the commit timestamp.
func InsertStatement(params map[string]interface{}) spanner.Statement {
	return spanner.Statement{
		SQL: fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES (@%s, @%s, @%s, @%s, PENDING_COMMIT_TIMESTAMP())
			THEN RETURN %s`,
			TableName, ColName, ColDescription, ColPrice, ColImageURL, ColCreatedAt,
			ColName, ColDescription, ColPrice, ColImageURL,
			ColProductID),
		Params: params,
	}
}

// UpdateStatement builds the DML that overwrites every mutable column of one row.
func UpdateStatement(productID int64, params map[string]interface{}) spanner.Statement {
	p := copyParams(params)
	p[ColProductID] = productID
	return spanner.Statement{
		SQL: fmt.Sprintf(`UPDATE %s SET %s = @%s, %s = @%s, %s = @%s, %s = @%s WHERE %s = @%s`,
			TableName,
			ColName, ColName,
			ColDescription, ColDescription,
			ColPrice, ColPrice,
			ColImageURL, ColImageURL,
			ColProductID, ColProductID),
		Params: p,
	}
}

// SetImageURLStatement builds the DML that patches only the image reference.
func SetImageURLStatement(productID int64, imageURL string) spanner.Statement {
	return spanner.Statement{
		SQL: fmt.Sprintf(`UPDATE %s SET %s = @%s WHERE %s = @%s`,
			TableName, ColImageURL, ColImageURL, ColProductID, ColProductID),
		Params: map[string]interface{}{
			ColImageURL:  nullString(imageURL),
			ColProductID: productID,
		},
	}
}

// DeleteStatement builds the DML that removes one row.
func DeleteStatement(productID int64) spanner.Statement {
	return spanner.Statement{
		SQL:    fmt.Sprintf(`DELETE FROM %s WHERE %s = @%s`, TableName, ColProductID, ColProductID),
		Params: map[string]interface{}{ColProductID: productID},
	}
}

// GetStatement selects one row by id.
func GetStatement(productID int64) spanner.Statement {
	return spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s FROM %s WHERE %s = @%s`,
			strings.Join(SelectColumns, ", "), TableName, ColProductID, ColProductID),
		Params: map[string]interface{}{ColProductID: productID},
	}
}

// ListStatement selects the newest rows first, capped at limit.
func ListStatement(limit int) spanner.Statement {
	return spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s DESC LIMIT @limit`,
			strings.Join(SelectColumns, ", "), TableName, ColCreatedAt, ColProductID),
		Params: map[string]interface{}{"limit": int64(limit)},
	}
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func copyParams(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
