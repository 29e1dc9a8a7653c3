package query

// Per-entity filter specs. These are the only parameters the list endpoints
// honor; anything else in the query string is ignored.

var ProfileSpec = Spec{
	Fields: map[string]Field{
		"gender":    {Column: "gender", Kind: Exact},
		"religion":  {Column: "religion", Kind: Exact},
		"community": {Column: "community", Kind: Exact},
		"education": {Column: "education", Kind: Exact},
		"location":  {Column: "location", Kind: Substring},
		"occupation": {Column: "occupation", Kind: Substring},
		"verified":  {Column: "verified", Kind: Boolean},
		"premium":   {Column: "premium", Kind: Boolean},
		"minAge":    {Column: "age", Kind: Min},
		"maxAge":    {Column: "age", Kind: Max},
	},
	SearchColumns: []string{"name", "location", "occupation"},
	SortColumns: map[string]string{
		"createdAt": "created_at",
		"age":       "age",
		"name":      "name",
	},
	DefaultSort:  "-createdAt",
	DefaultLimit: 12,
}

var ServiceSpec = Spec{
	Fields: map[string]Field{
		"category":  {Column: "category", Kind: Exact, Ignore: "All"},
		"minRating": {Column: "rating", Kind: Min},
	},
	SearchColumns: []string{"name", "description"},
	SortColumns: map[string]string{
		"rating":    "rating",
		"reviews":   "reviews",
		"name":      "name",
		"createdAt": "created_at",
	},
	DefaultSort:  "-rating",
	DefaultLimit: 0,
}

var BlogSpec = Spec{
	Fields: map[string]Field{
		"category": {Column: "category", Kind: Exact},
	},
	SearchColumns: []string{"title", "content"},
	SortColumns: map[string]string{
		"date":      "date",
		"title":     "title",
		"createdAt": "created_at",
	},
	DefaultSort:  "-date",
	DefaultLimit: 9,
}

var StorySpec = Spec{
	Fields: map[string]Field{
		"location": {Column: "location", Kind: Substring},
	},
	SearchColumns: []string{"couple_name", "story"},
	SortColumns: map[string]string{
		"weddingDate": "wedding_date",
		"coupleName":  "couple_name",
		"createdAt":   "created_at",
	},
	DefaultSort:  "-weddingDate",
	DefaultLimit: 0,
}

var UserSpec = Spec{
	Fields: map[string]Field{
		"gender":   {Column: "gender", Kind: Exact},
		"role":     {Column: "role", Kind: Exact},
		"isActive": {Column: "is_active", Kind: Boolean},
	},
	SearchColumns: []string{"first_name", "last_name", "email", "phone"},
	SortColumns: map[string]string{
		"createdAt": "created_at",
		"firstName": "first_name",
		"lastName":  "last_name",
		"lastLogin": "last_login",
	},
	DefaultSort:  "-createdAt",
	DefaultLimit: 20,
}
