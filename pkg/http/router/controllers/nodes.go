package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/sendero-app/sendero/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type nodeAPI struct {
	baseAPI
	nodeService NodeService
}

func NewNodeAPI(nodeService NodeService, log *zap.Logger) *nodeAPI {
	return &nodeAPI{
		baseAPI:     baseAPI{log: log},
		nodeService: nodeService,
	}
}

func (api *nodeAPI) Routes(group *helper.RouteGroup) {
	group.GET("/nodes", api.listNodes)
	group.POST("/nodes", api.createNode)
	group.DELETE("/nodes/:name", api.deleteNode)
	group.GET("/nodes/near", api.nearbyNodes)
}

func (api *nodeAPI) listNodes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	nodes, err := api.nodeService.ListNodes()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": nodes}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *nodeAPI) createNode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request createNodeRequest
		err     error
	)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	node, err := api.nodeService.CreateNode(r.Context(), request.toNode())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": node}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *nodeAPI) deleteNode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	if name == "" {
		api.BadRequestResponse(w, r, errors.New("node name is required"))
		return
	}

	if err := api.nodeService.DeleteNode(r.Context(), name); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "node deleted"}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *nodeAPI) nearbyNodes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	lng, err := strconv.ParseFloat(query.Get("lng"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lng is required and must be a valid float"))
		return
	}
	radius, err := strconv.ParseFloat(query.Get("radius"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius is required and must be a valid float (km)"))
		return
	}

	nearby, err := api.nodeService.NearbyNodes(lat, lng, radius)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": nearby}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
