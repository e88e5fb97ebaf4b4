package cmd

type Config struct {
	DemoJobsEnabled string
	LogFile         string
}
