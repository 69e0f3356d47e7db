package store

const (
	getDailyLog = `
		SELECT date, entries
		FROM daily_consumption
		WHERE date = ?;`

	upsertDailyLog = `
		INSERT INTO daily_consumption (date, entries)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET entries = excluded.entries;`

	deleteDailyLog = `
		DELETE FROM daily_consumption WHERE date = ?;`

	getAllDailyLogs = `
		SELECT date, entries
		FROM daily_consumption
		ORDER BY date;`

	updateDailyLogEntries = `
		UPDATE daily_consumption SET entries = ? WHERE date = ?;`

	getProduct = `
		SELECT code, name, brand, calories, protein, carbs, fat,
		       fiber, sugar, sodium, serving_size, serving_unit,
		       user_edited, fetched_at
		FROM products
		WHERE code = ?;`

	upsertProduct = `
		INSERT INTO products (
			code, name, brand, calories, protein, carbs, fat,
			fiber, sugar, sodium, serving_size, serving_unit,
			user_edited, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name         = excluded.name,
			brand        = excluded.brand,
			calories     = excluded.calories,
			protein      = excluded.protein,
			carbs        = excluded.carbs,
			fat          = excluded.fat,
			fiber        = excluded.fiber,
			sugar        = excluded.sugar,
			sodium       = excluded.sodium,
			serving_size = excluded.serving_size,
			serving_unit = excluded.serving_unit,
			user_edited  = excluded.user_edited,
			fetched_at   = excluded.fetched_at;`

	deleteProduct = `
		DELETE FROM products WHERE code = ?;`

	getAllProducts = `
		SELECT code, name, brand, calories, protein, carbs, fat,
		       fiber, sugar, sodium, serving_size, serving_unit,
		       user_edited, fetched_at
		FROM products;`

	addFavorite = `
		INSERT INTO favorites (code) VALUES (?)
		ON CONFLICT(code) DO NOTHING;`

	removeFavorite = `
		DELETE FROM favorites WHERE code = ?;`

	isFavorite = `
		SELECT COUNT(*) FROM favorites WHERE code = ?;`

	getAllFavorites = `
		SELECT code FROM favorites ORDER BY code;`

	getMeal = `
		SELECT id, name, description, foods
		FROM meals
		WHERE id = ?;`

	upsertMeal = `
		INSERT INTO meals (id, name, description, foods)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name        = excluded.name,
			description = excluded.description,
			foods       = excluded.foods;`

	deleteMeal = `
		DELETE FROM meals WHERE id = ?;`

	getAllMeals = `
		SELECT id, name, description, foods
		FROM meals
		ORDER BY name;`

	updateMealFoods = `
		UPDATE meals SET foods = ? WHERE id = ?;`

	getWeightEntry = `
		SELECT date, weight FROM weight_history WHERE date = ?;`

	upsertWeightEntry = `
		INSERT INTO weight_history (date, weight)
		VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET weight = excluded.weight;`

	deleteWeightEntry = `
		DELETE FROM weight_history WHERE date = ?;`

	getAllWeightEntries = `
		SELECT date, weight
		FROM weight_history
		ORDER BY date;`

	getSetting = `
		SELECT value FROM settings WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	deleteSetting = `
		DELETE FROM settings WHERE key = ?;`
)
