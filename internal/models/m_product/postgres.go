package m_product

// PostgreSQL statements for the products table. Prices cross the wire as text
// so NUMERIC values never pass through a float.
const (
	PgInsertSQL = `INSERT INTO products (name, description, price, image_url)
		VALUES ($1, NULLIF($2, ''), $3::numeric, NULLIF($4, ''))
		RETURNING product_id`

	PgUpdateSQL = `UPDATE products
		SET name = $1, description = NULLIF($2, ''), price = $3::numeric, image_url = NULLIF($4, '')
		WHERE product_id = $5`

	PgSetImageURLSQL = `UPDATE products SET image_url = NULLIF($1, '') WHERE product_id = $2`

	PgDeleteSQL = `DELETE FROM products WHERE product_id = $1`

	PgGetSQL = `SELECT product_id, name, COALESCE(description, ''), price::text, COALESCE(image_url, ''), created_at
		FROM products
		WHERE product_id = $1`

	PgListSQL = `SELECT product_id, name, COALESCE(description, ''), price::text, COALESCE(image_url, ''), created_at
		FROM products
		ORDER BY created_at DESC, product_id DESC
		LIMIT $1`
)
