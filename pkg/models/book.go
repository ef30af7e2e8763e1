package models

// Book is the canonical stored form of a catalog entry. The isbn is the
// primary key; any input field outside this set is dropped before the
// record is persisted or echoed back.
type Book struct {
	ISBN      string `json:"isbn"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}
