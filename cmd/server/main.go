package main

import "geronimocrm/internal/app"

// @title GeronimoCRM API
// @version 1.0
// @description Sales and marketing CRM backend: clients, campaigns, leads, interactions, meetings, tasks, targets and reporting.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
