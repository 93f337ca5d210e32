package yamlvitals

type yamlVitals struct {
	Vitals []yamlVital `yaml:"vitals"`
}

type yamlVital struct {
	Kind      string        `yaml:"kind"`
	Title     string        `yaml:"title"`
	Unit      string        `yaml:"unit"`
	Status    string        `yaml:"status"`
	Current   *float64      `yaml:"current"`
	Secondary *float64      `yaml:"secondary"`
	Goal      float64       `yaml:"goal"`
	Readings  []yamlReading `yaml:"readings"`
}

type yamlReading struct {
	Label     string   `yaml:"label"`
	Value     float64  `yaml:"value"`
	Secondary *float64 `yaml:"secondary"`
}
