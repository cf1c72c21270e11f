package menuimport

func BuildExtractionPrompt() string {
	return `Analyze this menu image. Extract all food and drink items grouped by their category.
Return a valid JSON object matching this schema:
{
    "categories": ["Category Name 1", "Category Name 2"],
    "items": [
        { "id": "unique_string", "name": "Item Name", "price": 123, "category": "Category Name 1" }
    ]
}
Ensure prices are numbers. If a currency symbol is present, ignore it.
Generate unique IDs for items.
Output MUST be valid JSON. NO explanations. NO markdown. NO extra text.`
}
