// Command fieldquery classifies points against the fields of a layout file.
//
//	fieldquery side 12 1
//	fieldquery closest 12 1 --field spawn --outer
//	fieldquery grid --field plaza
//
// The layout file is taken from --layout, then $FIELDQUERY_LAYOUT, then
// ./field.toml. Environment variables may also be set in a .env file in the
// working directory.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("fieldquery failed")
		os.Exit(1)
	}
}
