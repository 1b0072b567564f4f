package catalog

const (
	imageFrame = "https://i.postimg.cc/JnfnWbTn/Frame-53.png"
	imageGroup = "https://www.linkpicture.com/q/Group-26.png"
)

// Default returns the built-in catalog. Every call returns an identical,
// independently owned copy.
func Default() []Country {
	return []Country{
		{
			Name: "Japan",
			TouristPlaces: []TouristPlace{
				{
					Name:             "Tokyo",
					ShortDescription: "This is tokyo",
					LongDescription:  "Shsfdsfjsdflk",
					Images:           []string{imageFrame, imageGroup},
				},
				{
					Name:             "Tokyo 1",
					ShortDescription: "This is tokyo 1",
					LongDescription:  "Shsfdsfjsdklfjdflkjdsljfdslkfsdflk",
					Images:           []string{imageGroup, imageFrame},
				},
				{
					Name:             "Tokyo 2",
					ShortDescription: "This is tokyo 1",
					LongDescription:  "Shsfdsfjsdklfjdflkjdsljfdslkfsdflk",
					Images:           []string{imageGroup, imageFrame},
				},
				{
					Name:             "Tokyo 3",
					ShortDescription: "This is tokyo 1",
					LongDescription:  "Shsfdsfjsdklfjdflkjdsljfdslkfsdflk",
					Images:           []string{imageGroup, imageFrame},
				},
			},
		},
		{
			Name: "South Korea",
			TouristPlaces: []TouristPlace{
				{
					Name:             "Korea 1",
					ShortDescription: "This is tokyo",
					LongDescription:  "Shsfdsfjsdflk",
					Images:           []string{imageGroup, imageFrame},
				},
				{
					Name:             "Korea 2",
					ShortDescription: "This is tokyo 1",
					LongDescription:  "Shsfdsfjsdklfjdflkjdsljfdslkfsdflk",
					Images:           []string{imageGroup, imageFrame},
				},
			},
		},
	}
}
