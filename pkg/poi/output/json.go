package output

import "encoding/json"

// ToJSON serializes workbook data to JSON.
func ToJSON(data *WorkbookData, pretty bool) ([]byte, error) {
	return marshal(data, pretty)
}

// SheetToJSON serializes a single sheet to JSON.
func SheetToJSON(sheet *SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
