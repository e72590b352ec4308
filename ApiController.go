package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"sheetCalc/contracts"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SheetRegistry contracts.SheetRegistry
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	Text string `json:"text"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

func NewApiController(sheetRegistry contracts.SheetRegistry) *ApiController {
	return &ApiController{SheetRegistry: sheetRegistry}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.CellState

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRegistry.SetCell(params.SheetId, params.CellId, request.Text)
	}

	if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.FormulaSyntaxError) || errors.Is(err, contracts.CircularDependencyError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.CellState

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRegistry.GetCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) || errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ClearCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetRegistry.ClearCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.SheetDump

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRegistry.GetSheetDump(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetValuesTsvAction(c *gin.Context) {
	api.printTsv(c, api.SheetRegistry.PrintValues)
}

func (api *ApiController) GetTextsTsvAction(c *gin.Context) {
	api.printTsv(c, api.SheetRegistry.PrintTexts)
}

func (api *ApiController) printTsv(c *gin.Context, print func(sheetId string, output io.Writer) error) {
	params := SheetEndpointParams{}
	var buffer bytes.Buffer

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = print(params.SheetId, &buffer)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", buffer.Bytes())
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		err = api.SheetRegistry.Subscribe(params.SheetId, params.CellId, request.WebhookUrl)
	}

	if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusCreated)
	}
}
