package schema

// TableDefinitions contains all the SQL statements to create the database
// tables. Statements run in order, so parents come before children.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS quote_submissions (
		id BIGSERIAL PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(50),
		vehicle_type VARCHAR(100) NOT NULL,
		vehicle_make VARCHAR(100),
		vehicle_model VARCHAR(100),
		vehicle_year VARCHAR(10),
		service_type VARCHAR(100) NOT NULL,
		finish VARCHAR(100),
		description TEXT,
		budget VARCHAR(100),
		timeline VARCHAR(100),
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quote_files (
		id BIGSERIAL PRIMARY KEY,
		quote_id BIGINT NOT NULL REFERENCES quote_submissions(id) ON DELETE CASCADE,
		storage_key VARCHAR(512) NOT NULL,
		url TEXT NOT NULL,
		filename VARCHAR(255) NOT NULL,
		mime_type VARCHAR(100) NOT NULL,
		size_bytes BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		type VARCHAR(20) NOT NULL,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) UNIQUE NOT NULL,
		description TEXT,
		base_price BIGINT NOT NULL DEFAULT 0,
		compare_at_price BIGINT,
		images TEXT[] NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		has_variants BOOLEAN NOT NULL DEFAULT FALSE,
		track_inventory BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_variants (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		sku VARCHAR(100),
		price BIGINT NOT NULL DEFAULT 0,
		inventory INT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR(64),
		session_id VARCHAR(64),
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		variant_id BIGINT REFERENCES product_variants(id) ON DELETE CASCADE,
		price BIGINT NOT NULL,
		quantity INT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		owner_key VARCHAR(80) GENERATED ALWAYS AS (COALESCE('u:' || user_id, 's:' || session_id)) STORED
	)`,
	// One row per (owner, product, variant); the upsert relies on these
	`CREATE UNIQUE INDEX IF NOT EXISTS cart_items_owner_product_variant
		ON cart_items (owner_key, product_id, variant_id) WHERE variant_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS cart_items_owner_product
		ON cart_items (owner_key, product_id) WHERE variant_id IS NULL`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		order_number VARCHAR(32) UNIQUE NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(50),
		shipping_address TEXT NOT NULL,
		subtotal BIGINT NOT NULL DEFAULT 0,
		shipping_cost BIGINT NOT NULL DEFAULT 0,
		tax BIGINT NOT NULL DEFAULT 0,
		discount BIGINT NOT NULL DEFAULT 0,
		total BIGINT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		stripe_payment_id VARCHAR(255),
		carrier VARCHAR(100),
		tracking_number VARCHAR(255),
		shipped_at TIMESTAMP,
		delivered_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL,
		variant_id BIGINT,
		product_name VARCHAR(255) NOT NULL,
		variant_name VARCHAR(255),
		price BIGINT NOT NULL,
		quantity INT NOT NULL,
		total BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gift_certificates (
		id BIGSERIAL PRIMARY KEY,
		code VARCHAR(20) UNIQUE NOT NULL,
		amount BIGINT NOT NULL,
		balance BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		recipient_name VARCHAR(255),
		recipient_email VARCHAR(255),
		message TEXT,
		order_id BIGINT,
		order_item_id BIGINT,
		expires_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id BIGSERIAL PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		vehicle_info VARCHAR(255),
		content TEXT NOT NULL,
		rating INT NOT NULL DEFAULT 5,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255),
		description TEXT,
		features TEXT[] NOT NULL DEFAULT '{}',
		price_range VARCHAR(100),
		image_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS business_info (
		id BIGINT PRIMARY KEY DEFAULT 1,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		email VARCHAR(255),
		address TEXT,
		hours JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sprayers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		title VARCHAR(255),
		bio TEXT,
		photo_url TEXT,
		specialties TEXT[] NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_items (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		before_image_key VARCHAR(512) NOT NULL,
		before_image_url TEXT NOT NULL,
		after_image_key VARCHAR(512) NOT NULL,
		after_image_url TEXT NOT NULL,
		sprayer_id BIGINT REFERENCES sprayers(id) ON DELETE SET NULL,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		slug VARCHAR(255) UNIQUE NOT NULL,
		excerpt TEXT,
		content TEXT NOT NULL,
		cover_image_url TEXT,
		tags TEXT[] NOT NULL DEFAULT '{}',
		published_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(255),
		bio TEXT,
		photo_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS portfolio_items (
		id BIGSERIAL PRIMARY KEY,
		team_member_id BIGINT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		image_url TEXT,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS quote_submissions_status ON quote_submissions (status)`,
	`CREATE INDEX IF NOT EXISTS orders_status ON orders (status)`,
	`CREATE INDEX IF NOT EXISTS gallery_items_sprayer ON gallery_items (sprayer_id)`,
}
