package queries

// CreateOrder inserts the order row; money amounts are computed by the caller
// from price snapshots.
const CreateOrder = `
	INSERT INTO orders (
		order_number, customer_id, restaurant_id, delivery_type,
		subtotal, tax_amount, delivery_fee, discount_amount,
		tip_amount, total_amount, payment_method, delivery_address_id,
		delivery_instructions, special_instructions
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
	) RETURNING id::text, status, created_at`

// AddOrderItem inserts one line with its price snapshot.
const AddOrderItem = `
	INSERT INTO order_items (
		order_id, food_item_id, quantity, unit_price,
		total_price, special_instructions
	) VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id::text`

// GetOrderByID returns one order with its items pre-aggregated into a JSON
// array.
const GetOrderByID = `
	SELECT
		o.id::text,
		o.order_number,
		o.customer_id::text,
		o.restaurant_id::text,
		o.status,
		o.delivery_type,
		o.subtotal,
		o.tax_amount,
		o.delivery_fee,
		o.discount_amount,
		o.tip_amount,
		o.total_amount,
		o.payment_method,
		o.delivery_address_id::text,
		o.delivery_instructions,
		o.special_instructions,
		o.created_at,
		o.updated_at,
		r.name AS restaurant_name,
		r.phone AS restaurant_phone,
		u.first_name || ' ' || u.last_name AS customer_name,
		u.phone AS customer_phone,
		ua.street_address || ', ' || ua.city || ', ' || ua.state || ' ' || ua.postal_code AS delivery_address,
		COALESCE(
			json_agg(
				json_build_object(
					'id', oi.id,
					'food_item_id', oi.food_item_id,
					'food_item_name', fi.name,
					'quantity', oi.quantity,
					'unit_price', oi.unit_price,
					'total_price', oi.total_price,
					'special_instructions', oi.special_instructions,
					'image_url', fi.image_url
				)
			) FILTER (WHERE oi.id IS NOT NULL),
			'[]'
		) AS order_items
	FROM orders o
	JOIN restaurants r ON o.restaurant_id = r.id
	JOIN users u ON o.customer_id = u.id
	LEFT JOIN user_addresses ua ON o.delivery_address_id = ua.id
	LEFT JOIN order_items oi ON o.id = oi.order_id
	LEFT JOIN food_items fi ON oi.food_item_id = fi.id
	WHERE o.id = $1
	GROUP BY o.id, r.name, r.phone, u.first_name, u.last_name, u.phone,
	         ua.street_address, ua.city, ua.state, ua.postal_code`

// ListRecentOrders feeds the admin orders report.
const ListRecentOrders = `
	SELECT
		o.id::text,
		o.order_number,
		r.name AS restaurant_name,
		u.first_name || ' ' || u.last_name AS customer_name,
		o.status,
		COUNT(oi.id) AS total_items,
		o.total_amount,
		o.created_at
	FROM orders o
	JOIN restaurants r ON o.restaurant_id = r.id
	JOIN users u ON o.customer_id = u.id
	LEFT JOIN order_items oi ON o.id = oi.order_id
	GROUP BY o.id, r.name, u.first_name, u.last_name
	ORDER BY o.created_at DESC
	LIMIT $1`
