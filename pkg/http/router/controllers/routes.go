package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/sendero-app/sendero/pkg/engine/planner"
	helper "github.com/sendero-app/sendero/pkg/http/router/routerhelper"
	"github.com/sendero-app/sendero/pkg/http/usecases"
	"go.uber.org/zap"
)

type routeAPI struct {
	baseAPI
	routeService RouteService
}

func NewRouteAPI(routeService RouteService, log *zap.Logger) *routeAPI {
	return &routeAPI{
		baseAPI:      baseAPI{log: log},
		routeService: routeService,
	}
}

func (api *routeAPI) Routes(group *helper.RouteGroup) {
	group.GET("/routes", api.listRoutes)
	group.GET("/routes/:name", api.getRoute)
	group.POST("/routes", api.createRoute)
	group.DELETE("/routes/:name", api.deleteRoute)
	group.POST("/routes/generate", api.generateRoutes)
	group.POST("/routes/suggestions", api.suggestRoutes)
	group.POST("/shortest-distances", api.shortestDistances)
}

func (api *routeAPI) listRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	routes, err := api.routeService.ListRoutes()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": routes}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routeAPI) getRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	if name == "" {
		api.BadRequestResponse(w, r, errors.New("route name is required"))
		return
	}

	route, err := api.routeService.GetRoute(name)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": route}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routeAPI) createRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request createRouteRequest
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

	route, err := api.routeService.CreateRoute(r.Context(), usecases.CreateRouteInput{
		Name:                   request.Name,
		Description:            request.Description,
		Difficulty:             request.Difficulty,
		Popularity:             request.Popularity,
		PointNames:             request.Points,
		MeasuredDistanceMeters: request.Distance,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": route}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routeAPI) deleteRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	if name == "" {
		api.BadRequestResponse(w, r, errors.New("route name is required"))
		return
	}

	if err := api.routeService.DeleteRoute(r.Context(), name); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": "route deleted"}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routeAPI) generateRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request generateRoutesRequest
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

	routes, err := api.routeService.GenerateRoutes(r.Context(), planner.GenerateParams{
		Nodes:                 toNodes(request.Nodes),
		TargetDurationMinutes: request.Duration,
		WalkingSpeedKmh:       request.WalkingSpeed,
		Difficulty:            request.Difficulty,
		Experience:            request.Experience,
		ToleranceMinutes:      request.Tolerance,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": routes}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routeAPI) suggestRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request suggestRoutesRequest
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

	routes, err := api.routeService.SuggestRoutes(r.Context(), planner.SuggestParams{
		DurationMinutes: request.Duration,
		Difficulty:      request.Difficulty,
		Experience:      request.Experience,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": routes}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routeAPI) shortestDistances(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestDistancesRequest
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

	result, err := api.routeService.ShortestDistances(r.Context(), toNodes(request.Nodes), request.StartNodeName)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
