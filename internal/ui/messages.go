package ui

// BrandSelectedMsg asks the app to search for a brand.
type BrandSelectedMsg struct {
	Brand string
}
