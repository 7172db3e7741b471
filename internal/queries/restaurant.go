// Package queries is the catalog of named parameterized SQL statements.
// Every variable value is a bound parameter ($1..$n); ILIKE patterns are
// built by the caller, never concatenated into statement text.
package queries

// restaurantColumns is the scan order shared by all restaurant statements.
const restaurantColumns = `
	r.id::text,
	r.chain_id::text,
	r.name,
	r.description,
	r.cuisine_type,
	r.phone,
	r.email,
	r.street_address,
	r.city,
	r.state,
	r.postal_code,
	r.country,
	r.latitude,
	r.longitude,
	r.delivery_radius_km,
	r.minimum_order_amount,
	r.delivery_fee,
	r.logo_url,
	r.cover_image_url,
	r.is_active,
	r.is_accepting_orders,
	r.average_rating,
	r.total_reviews,
	r.created_at,
	r.updated_at`

// ListRestaurantsWithMenu returns active restaurants with their available
// menu items pre-aggregated into a JSON array (one row per restaurant).
const ListRestaurantsWithMenu = `
	SELECT` + restaurantColumns + `,
		COALESCE(
			json_agg(
				json_build_object(
					'id', fi.id,
					'name', fi.name,
					'description', fi.description,
					'price', fi.price,
					'image_url', fi.image_url,
					'category', fc.name,
					'is_featured', fi.is_featured,
					'average_rating', fi.average_rating,
					'total_orders', fi.total_orders
				)
			) FILTER (WHERE fi.id IS NOT NULL),
			'[]'
		) AS menu_items
	FROM restaurants r
	LEFT JOIN food_items fi ON r.id = fi.restaurant_id AND fi.is_available = true
	LEFT JOIN food_categories fc ON fi.category_id = fc.id
	WHERE r.is_active = true
	GROUP BY r.id
	ORDER BY r.average_rating DESC, r.total_reviews DESC`

// GetRestaurantByID returns one active restaurant.
const GetRestaurantByID = `
	SELECT` + restaurantColumns + `
	FROM restaurants r
	WHERE r.id = $1 AND r.is_active = true`

// ListRestaurantsByCity matches the city case-insensitively; the caller
// supplies the wildcard pattern.
const ListRestaurantsByCity = `
	SELECT` + restaurantColumns + `,
		COUNT(fi.id) AS total_menu_items
	FROM restaurants r
	LEFT JOIN food_items fi ON r.id = fi.restaurant_id AND fi.is_available = true
	WHERE r.city ILIKE $1 AND r.is_active = true
	GROUP BY r.id
	ORDER BY r.average_rating DESC`

// ListRestaurantsByCuisine matches an exact tag in the cuisine_type array.
const ListRestaurantsByCuisine = `
	SELECT` + restaurantColumns + `,
		COUNT(fi.id) AS total_menu_items
	FROM restaurants r
	LEFT JOIN food_items fi ON r.id = fi.restaurant_id AND fi.is_available = true
	WHERE $1 = ANY(r.cuisine_type) AND r.is_active = true
	GROUP BY r.id
	ORDER BY r.average_rating DESC`

// ListRestaurantCategorySummaries breaks one restaurant's menu down by
// category with item counts and price spread. Categories whose items are all
// unavailable are dropped.
const ListRestaurantCategorySummaries = `
	SELECT
		fc.id::text,
		fc.name,
		fc.sort_order,
		COUNT(fi.id) AS total_items,
		COUNT(CASE WHEN fi.is_available = true THEN 1 END) AS available_items,
		MIN(fi.price) AS min_price,
		MAX(fi.price) AS max_price,
		ROUND(AVG(fi.price), 2) AS avg_price
	FROM food_categories fc
	INNER JOIN food_items fi ON fc.id = fi.category_id
	WHERE fi.restaurant_id = $1
	  AND fc.is_active = true
	GROUP BY fc.id
	HAVING COUNT(CASE WHEN fi.is_available = true THEN 1 END) > 0
	ORDER BY fc.sort_order, fc.name`

// GetRestaurantDeliveryFee is used while placing an order.
const GetRestaurantDeliveryFee = `
	SELECT COALESCE(delivery_fee, 0)
	FROM restaurants
	WHERE id = $1 AND is_active = true`
