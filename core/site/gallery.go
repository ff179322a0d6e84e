package site

const AllCategories = "All"

type (
	Image struct {
		Src      string `json:"src"`
		Alt      string `json:"alt"`
		Category string `json:"category"`
	}

	Gallery struct {
		images []Image
	}
)

const cdn = "https://res.cloudinary.com/dl8hswxt2/image/upload/"

var defaultImages = []Image{
	{Src: cdn + "gallery-classroom.jpg", Alt: "Modern classroom with students learning", Category: "Campus"},
	{Src: cdn + "gallery-lab.jpg", Alt: "Science laboratory with students conducting experiments", Category: "Labs"},
	{Src: cdn + "gallery-library.jpg", Alt: "School library with students studying", Category: "Campus"},
	{Src: cdn + "gallery-sports.jpg", Alt: "Students playing sports on the school field", Category: "Sports"},
	{Src: cdn + "gallery-event.jpg", Alt: "Annual day celebration with student performances", Category: "Events"},
	{Src: cdn + "gallery-art.jpg", Alt: "Art room with students creating artwork", Category: "Arts"},
	{Src: cdn + "gallery-computer.jpg", Alt: "Computer lab with students working", Category: "Labs"},
}

func NewGallery(images ...Image) *Gallery {
	if len(images) == 0 {
		images = defaultImages
	}
	return &Gallery{images: images}
}

// Categories returns "All" followed by the image categories in first-seen order.
func (g *Gallery) Categories() []string {
	cats := []string{AllCategories}
	seen := make(map[string]bool)
	for _, img := range g.images {
		if !seen[img.Category] {
			seen[img.Category] = true
			cats = append(cats, img.Category)
		}
	}
	return cats
}

// Filter returns the images of category, in list order. "All" and "" return every image.
func (g *Gallery) Filter(category string) []Image {
	if category == "" || category == AllCategories {
		return append([]Image(nil), g.images...)
	}
	filtered := make([]Image, 0, len(g.images))
	for _, img := range g.images {
		if img.Category == category {
			filtered = append(filtered, img)
		}
	}
	return filtered
}

// Lightbox returns the image shown enlarged when the index-th image of the filtered list is opened.
func (g *Gallery) Lightbox(category string, index int) (Image, bool) {
	filtered := g.Filter(category)
	if index < 0 || index >= len(filtered) {
		return Image{}, false
	}
	return filtered[index], true
}
