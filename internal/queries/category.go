package queries

// ListActiveCategories lists active categories with item counts.
const ListActiveCategories = `
	SELECT
		fc.id::text,
		fc.name,
		fc.description,
		fc.image_url,
		fc.sort_order,
		fc.is_active,
		fc.created_at,
		fc.updated_at,
		COUNT(fi.id) AS total_items,
		COUNT(CASE WHEN fi.is_available = true THEN 1 END) AS available_items
	FROM food_categories fc
	LEFT JOIN food_items fi ON fc.id = fi.category_id
	WHERE fc.is_active = true
	GROUP BY fc.id
	ORDER BY fc.sort_order, fc.name`
