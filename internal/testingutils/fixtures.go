package testingutils

// FixtureDataset is a small export in the shape the catalog consumes, with
// the usual rough edges: title instead of name, missing categories, an
// "Unknown" method, a bare string ingredient list and a stray non-object.
const FixtureDataset = `[
	{"id": "ramen", "name": "Miso Ramen", "category": "Soup", "cuisine_style": "Japanese",
	 "cooking_method": "Simmered", "ingredients": ["white miso", "ramen noodles", "egg"],
	 "file_id": "1AbC", "file_type": "Google Doc", "content_preview": "A rich broth"},
	{"id": "salmon", "title": "Miso Glazed Salmon", "category": "Seafood", "cuisine": "Japanese",
	 "cooking_method": "Roasted", "ingredients": ["salmon", "miso"], "file_id": "2DeF", "file_type": "PDF"},
	{"id": "frittata", "name": "Spinach Frittata", "category": "Breakfasty",
	 "cooking_method": "Unknown", "ingredients": "eggs"},
	{"id": "mystery", "ingredients": ["Chocolate", "flour"]},
	"corrupt",
	{"id": "margarita", "name": "Margarita", "category": "Cocktails/Spirits", "cuisine_style": "Mexican",
	 "ingredients": ["tequila", "lime", "salt"]},
	{"id": "cacio", "name": "Cacio e Pepe", "category": "Pasta", "cuisine": "Italian",
	 "cooking_method": "Boiled", "ingredients": ["spaghetti", "pecorino", "black pepper"], "file_id": "3GhI"}
]`
