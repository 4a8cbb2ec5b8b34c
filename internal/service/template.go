package service

import (
	"github.com/lonng/twmj/db"
	"github.com/lonng/twmj/db/model"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/internal/security"
	"github.com/lonng/twmj/protocol"
	"github.com/pkg/errors"
)

func templateInfo(t *model.ScoringTemplate) protocol.Template {
	return protocol.Template{
		ID:           t.Id,
		Name:         t.Name,
		Rules:        t.Rules,
		RulesEnabled: t.RulesEnabled,
		IsDefault:    t.IsDefault,
		CreatedAt:    t.CreatedAt,
	}
}

// validate rejects names the store would not list cleanly and rule maps the
// engine could not load.
func validate(req *protocol.TemplateRequest) error {
	if req == nil {
		return errutil.ErrInvalidParameter
	}
	if !security.ValidateName(req.Name) {
		return errors.Wrapf(errutil.ErrInvalidParameter, "template name %q", req.Name)
	}
	if req.RulesEnabled == nil {
		req.RulesEnabled = map[string]bool{}
	}
	_, err := rule.Load(req.Rules, req.RulesEnabled)
	return err
}

func TemplateList() (*protocol.TemplateListResponse, error) {
	list, err := db.TemplateList()
	if err != nil {
		return nil, err
	}
	data := make([]protocol.Template, 0, len(list))
	for i := range list {
		data = append(data, templateInfo(&list[i]))
	}
	return &protocol.TemplateListResponse{Data: data, Total: len(data)}, nil
}

func TemplateInfo(id int64) (*protocol.Template, error) {
	t, err := Template(id)
	if err != nil {
		return nil, err
	}
	info := templateInfo(t)
	return &info, nil
}

func CreateTemplate(req *protocol.TemplateRequest) (*protocol.Template, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	t := &model.ScoringTemplate{
		Name:         req.Name,
		Rules:        req.Rules,
		RulesEnabled: req.RulesEnabled,
		IsDefault:    req.IsDefault,
	}
	if err := db.InsertTemplate(t); err != nil {
		return nil, err
	}
	logger.Infof("created template %d %q", t.Id, t.Name)
	info := templateInfo(t)
	return &info, nil
}

// UpdateTemplate replaces the name and rules of a template. Setting
// is_default promotes it, clearing the flag is ignored.
func UpdateTemplate(id int64, req *protocol.TemplateRequest) (*protocol.Template, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	t := &model.ScoringTemplate{
		Id:           id,
		Name:         req.Name,
		Rules:        req.Rules,
		RulesEnabled: req.RulesEnabled,
	}
	if err := db.UpdateTemplate(t); err != nil {
		return nil, err
	}
	if req.IsDefault {
		if err := db.SetDefaultTemplate(id); err != nil {
			return nil, err
		}
	}
	return TemplateInfo(id)
}

func SetDefaultTemplate(id int64) (*protocol.Template, error) {
	if err := db.SetDefaultTemplate(id); err != nil {
		return nil, err
	}
	return TemplateInfo(id)
}

func DeleteTemplate(id int64) error {
	if err := db.DeleteTemplate(id); err != nil {
		return err
	}
	logger.Infof("deleted template %d", id)
	return nil
}

// ImportTemplate stores a template received from the transfer relay as a new
// non-default template.
func ImportTemplate(tpl rule.Template) (*protocol.Template, error) {
	return CreateTemplate(&protocol.TemplateRequest{
		Name:         tpl.Name,
		Rules:        tpl.Rules,
		RulesEnabled: tpl.RulesEnabled,
	})
}
