package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColName        = "name"
	ColDescription = "description"
	ColPrice       = "price"
	ColImageURL    = "image_url"
	ColCreatedAt   = "created_at"
)

// SelectColumns is the column order every read query scans in.
var SelectColumns = []string{ColProductID, ColName, ColDescription, ColPrice, ColImageURL, ColCreatedAt}
