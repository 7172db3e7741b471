package queries

// foodItemColumns is the scan order shared by all food item statements.
const foodItemColumns = `
	fi.id::text,
	fi.restaurant_id::text,
	fi.category_id::text,
	fi.name,
	fi.description,
	fi.price,
	fi.discounted_price,
	fi.ingredients,
	fi.allergens,
	fi.dietary_info,
	fi.calories,
	fi.prep_time_minutes,
	fi.image_url,
	fi.is_available,
	fi.is_featured,
	fi.average_rating,
	fi.total_reviews,
	fi.total_orders,
	fi.created_at,
	fi.updated_at`

// searchResultColumns adds the join extras every search-shaped listing
// carries.
const searchResultColumns = foodItemColumns + `,
	fc.name AS category_name,
	r.name AS restaurant_name,
	r.delivery_fee,
	r.minimum_order_amount,
	r.average_rating AS restaurant_rating`

// variantsJSON pre-aggregates child variants into a JSON array per item;
// items without variants get '[]', never NULL.
const variantsJSON = `
	COALESCE(
		json_agg(
			json_build_object(
				'id', fiv.id,
				'name', fiv.name,
				'type', fiv.type,
				'price_modifier', fiv.price_modifier,
				'is_default', fiv.is_default
			)
		) FILTER (WHERE fiv.id IS NOT NULL),
		'[]'
	) AS variants`

// GetRestaurantMenu returns one restaurant's available items with category
// labels and embedded variants, ordered for category grouping.
const GetRestaurantMenu = `
	SELECT` + foodItemColumns + `,
		fc.name AS category_name,
		fc.sort_order AS category_sort_order,` + variantsJSON + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	LEFT JOIN food_item_variants fiv ON fi.id = fiv.food_item_id
	WHERE fi.restaurant_id = $1 AND fi.is_available = true
	GROUP BY fi.id, fc.name, fc.sort_order
	ORDER BY fc.sort_order, fi.name`

// GetFoodItemByID returns one item with variants regardless of availability.
const GetFoodItemByID = `
	SELECT` + foodItemColumns + `,
		fc.name AS category_name,
		r.name AS restaurant_name,
		r.delivery_fee,
		r.minimum_order_amount,` + variantsJSON + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	LEFT JOIN food_item_variants fiv ON fi.id = fiv.food_item_id
	WHERE fi.id = $1
	GROUP BY fi.id, fc.name, r.name, r.delivery_fee, r.minimum_order_amount, r.average_rating`

// SearchFoodItems ranks by full-text relevance; $1 is the raw term,
// $2 the caller-built ILIKE pattern.
const SearchFoodItems = `
	SELECT` + searchResultColumns + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	WHERE fi.is_available = true
	  AND r.is_active = true
	  AND (
		fi.name ILIKE $2
		OR fi.description ILIKE $2
		OR array_to_string(fi.ingredients, ' ') ILIKE $2
	  )
	ORDER BY
		ts_rank_cd(
			to_tsvector('english', fi.name || ' ' || COALESCE(fi.description, '') || ' ' || array_to_string(fi.ingredients, ' ')),
			plainto_tsquery('english', $1)
		) DESC,
		fi.average_rating DESC,
		fi.total_orders DESC`

// ListFoodItemsByCategory lists available items of one category.
const ListFoodItemsByCategory = `
	SELECT` + searchResultColumns + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	WHERE fc.id = $1
	  AND fi.is_available = true
	  AND r.is_active = true
	ORDER BY fi.average_rating DESC, fi.total_orders DESC`

// ListFoodItemsByDiet matches an exact dietary tag.
const ListFoodItemsByDiet = `
	SELECT` + searchResultColumns + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	WHERE fi.is_available = true
	  AND r.is_active = true
	  AND $1 = ANY(fi.dietary_info)
	ORDER BY fi.average_rating DESC, fi.total_orders DESC`

// ListFoodItemsByPriceRange returns items priced inside [$1, $2]; an
// inverted range simply matches nothing.
const ListFoodItemsByPriceRange = `
	SELECT` + searchResultColumns + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	WHERE fi.is_available = true
	  AND r.is_active = true
	  AND fi.price BETWEEN $1 AND $2
	ORDER BY fi.price ASC, fi.average_rating DESC`

// ListFeaturedFoodItems lists flagged or frequently ordered items.
const ListFeaturedFoodItems = `
	SELECT` + searchResultColumns + `
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	WHERE fi.is_available = true
	  AND r.is_active = true
	  AND (fi.is_featured = true OR fi.total_orders > 50)
	ORDER BY fi.is_featured DESC, fi.average_rating DESC, fi.total_orders DESC
	LIMIT $1`

// ListTrendingFoodItems lists items ordered within the last 7 days.
const ListTrendingFoodItems = `
	SELECT` + searchResultColumns + `,
		COUNT(oi.id) AS recent_orders
	FROM food_items fi
	JOIN food_categories fc ON fi.category_id = fc.id
	JOIN restaurants r ON fi.restaurant_id = r.id
	LEFT JOIN order_items oi ON fi.id = oi.food_item_id
	LEFT JOIN orders o ON oi.order_id = o.id
	WHERE fi.is_available = true
	  AND r.is_active = true
	  AND o.created_at >= NOW() - INTERVAL '7 days'
	GROUP BY fi.id, fc.name, r.name, r.delivery_fee, r.minimum_order_amount, r.average_rating
	HAVING COUNT(oi.id) > 0
	ORDER BY recent_orders DESC, fi.average_rating DESC
	LIMIT $1`

// GetFoodItemPrice snapshots the current price while placing an order.
const GetFoodItemPrice = `
	SELECT price, restaurant_id::text
	FROM food_items
	WHERE id = $1 AND is_available = true`
