package main

import (
	"sheetCalc/contracts"

	"github.com/gin-gonic/gin"
)

type ServiceContainer struct {
	WebhookDispatcher contracts.WebhookDispatcher
	SheetRegistry     contracts.SheetRegistry
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer() (container ServiceContainer) {
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRegistry = NewSheetRegistry(container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRegistry)

	container.Router = SetupRouter(container.ApiController)

	return
}
