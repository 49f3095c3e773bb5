package main

import "github.com/oshokin/alarm-stats/cmd/alarm-stats/cmd"

// @title        alarm-stats API
// @version      1.0
// @description  Alarm metadata and statistics derived from the alarm event log.
// @BasePath     /

func main() {
	cmd.Execute()
}
