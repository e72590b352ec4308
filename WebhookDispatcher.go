package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sheetCalc/contracts"
	"time"

	json "github.com/bytedance/sonic"
)

const WebhookWorkersCount = 5

type SheetWebhooks map[contracts.Position]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.CellState
}

// WebhookDispatcher delivers cell change notifications. Registration and
// Notify run under the registry lock; only the queue is shared with workers.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, pos contracts.Position, webhookUrl string) {
	if _, ok := manager.webhooks[sheetId]; !ok {
		manager.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[sheetId], pos)
	} else {
		manager.webhooks[sheetId][pos] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string, pos contracts.Position) string {
	if _, ok := manager.webhooks[sheetId]; !ok {
		return ""
	}

	return manager.webhooks[sheetId][pos]
}

func (manager *WebhookDispatcher) Notify(sheetId string, cells []*contracts.CellState) {
	sheetWebhooks, ok := manager.webhooks[sheetId]
	if !ok {
		return
	}

	commands := make([]WebhookSendCommand, 0, len(cells))
	for _, cell := range cells {
		if webhook, subscribed := sheetWebhooks[contracts.PositionFromString(cell.CellId)]; subscribed {
			commands = append(commands, WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			})
		}
	}

	if len(commands) > 0 {
		go manager.addToQueue(commands)
	}
}

func (manager *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	for _, command := range commands {
		manager.queue <- command
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
