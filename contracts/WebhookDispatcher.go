package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(sheetId string, pos Position, webhookUrl string)
	GetWebhookUrl(sheetId string, pos Position) string
	Notify(sheetId string, cells []*CellState)
	Start()
	Close()
}
