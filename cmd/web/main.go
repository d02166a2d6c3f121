// @title           Clinical Trials Interest Portal API
// @version         1.0
// @description     Public interest capture and admin outreach for clinical trial recruitment.
// @contact.name    Clinical Trials Information Center
// @contact.email   trials-support@example.com
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "github.com/SujayAnishetti/ClinicalTrials/internal/app"

func main() {
	app.Run()
}
