package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/twmj/internal/service"
	"github.com/lonng/twmj/internal/transfer"
	"github.com/lonng/twmj/protocol"
)

func MakeTemplateService() http.Handler {
	router := mux.NewRouter()
	router.Handle("/v1/templates/", nex.Handler(templateList)).Methods("GET")                                       // 模板列表
	router.Handle("/v1/templates/", nex.Handler(createTemplate).Before(writeFilter)).Methods("POST")                // 新建模板
	router.Handle("/v1/templates/export", nex.Handler(exportTemplate)).Methods("POST")                              // 分享模板
	router.Handle("/v1/templates/import/{uuid}", nex.Handler(importTemplate)).Methods("GET")                        // 取回分享
	router.Handle("/v1/templates/{id:[0-9]+}", nex.Handler(templateByID)).Methods("GET")                            // 模板詳情
	router.Handle("/v1/templates/{id:[0-9]+}", nex.Handler(updateTemplate).Before(writeFilter)).Methods("PUT")      // 修改模板
	router.Handle("/v1/templates/{id:[0-9]+}", nex.Handler(deleteTemplate).Before(writeFilter)).Methods("DELETE")   // 刪除模板
	router.Handle("/v1/templates/{id:[0-9]+}/default", nex.Handler(setDefault).Before(writeFilter)).Methods("POST") // 設為預設
	return router
}

func templateList() (*protocol.TemplateListResponse, error) {
	return service.TemplateList()
}

func createTemplate(req *protocol.TemplateRequest) (*protocol.Template, error) {
	return service.CreateTemplate(req)
}

func templateByID(r *http.Request) (*protocol.Template, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	return service.TemplateInfo(id)
}

func updateTemplate(r *http.Request, req *protocol.TemplateRequest) (*protocol.Template, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	return service.UpdateTemplate(id, req)
}

func deleteTemplate(r *http.Request) (*protocol.StringResponse, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	if err := service.DeleteTemplate(id); err != nil {
		return nil, err
	}
	return &protocol.SuccessResponse, nil
}

func setDefault(r *http.Request) (*protocol.Template, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	return service.SetDefaultTemplate(id)
}

func exportTemplate(req *protocol.ExportRequest) (*protocol.TransferRecord, error) {
	return transfer.Export(req.UUID, req.Template)
}

func importTemplate(r *http.Request) (*protocol.TransferRecord, error) {
	return transfer.Import(mux.Vars(r)["uuid"])
}
