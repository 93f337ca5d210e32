package yamlreminders

type yamlCalendar struct {
	Name string                    `yaml:"name"`
	Days map[string][]yamlReminder `yaml:"days"`
}

type yamlReminder struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Time        string `yaml:"time"`
	Kind        string `yaml:"kind"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
}
