package configs

// Output controls where generated datasets are written.
type Output struct {
	// Dir is the base directory of the dataset tree. It is created when
	// missing. Defaults to ./data.
	Dir string `env:"DIR" envDefault:"./data"`
}
