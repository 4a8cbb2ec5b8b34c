package db

import (
	"time"

	"github.com/lonng/twmj/db/model"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/rule"
)

// SeedTemplate installs the default rule table as the default template when
// the store holds no template at all.
func SeedTemplate() error {
	n, err := database.Count(&model.ScoringTemplate{})
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	if n > 0 {
		return nil
	}

	tpl := rule.DefaultTemplate()
	logger.Infof("seeding template %q", tpl.Name)
	return InsertTemplate(&model.ScoringTemplate{
		Name:         tpl.Name,
		Rules:        tpl.Rules,
		RulesEnabled: tpl.RulesEnabled,
		IsDefault:    true,
	})
}

// InsertTemplate stores t. A new default template demotes the previous one.
func InsertTemplate(t *model.ScoringTemplate) error {
	if t == nil {
		return errutil.ErrInvalidParameter
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}

	session := database.NewSession()
	defer session.Close()

	if err := session.Begin(); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}

	if t.IsDefault {
		if _, err := session.Exec("UPDATE `scoring_template` SET `is_default` = 0"); err != nil {
			session.Rollback()
			logger.Error(err)
			return errutil.ErrDBOperation
		}
	}

	if _, err := session.Insert(t); err != nil {
		session.Rollback()
		logger.Error(err)
		return errutil.ErrDBOperation
	}

	if err := session.Commit(); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func QueryTemplate(id int64) (*model.ScoringTemplate, error) {
	t := &model.ScoringTemplate{}
	has, err := database.Where("id=?", id).Get(t)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrTemplateNotFound
	}
	return t, nil
}

// QueryDefaultTemplate returns the default template. When the default was
// deleted the oldest remaining template is promoted.
func QueryDefaultTemplate() (*model.ScoringTemplate, error) {
	t := &model.ScoringTemplate{}
	has, err := database.Where("is_default=?", true).Get(t)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if has {
		return t, nil
	}

	t = &model.ScoringTemplate{}
	has, err = database.Asc("created_at", "id").Get(t)
	if err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	if !has {
		return nil, errutil.ErrTemplateNotFound
	}

	if err := SetDefaultTemplate(t.Id); err != nil {
		return nil, err
	}
	t.IsDefault = true
	return t, nil
}

// TemplateList lists the default template first, then the newest.
func TemplateList() ([]model.ScoringTemplate, error) {
	list := make([]model.ScoringTemplate, 0)
	if err := database.Desc("is_default", "created_at", "id").Find(&list); err != nil {
		logger.Error(err)
		return nil, errutil.ErrDBOperation
	}
	return list, nil
}

// UpdateTemplate rewrites the name and the rule maps of an existing template.
// The default flag only moves through SetDefaultTemplate.
func UpdateTemplate(t *model.ScoringTemplate) error {
	if t == nil {
		return errutil.ErrInvalidParameter
	}
	if _, err := QueryTemplate(t.Id); err != nil {
		return err
	}
	if _, err := database.Where("id=?", t.Id).Cols("name", "rules", "rules_enabled").Update(t); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func SetDefaultTemplate(id int64) error {
	if _, err := QueryTemplate(id); err != nil {
		return err
	}

	session := database.NewSession()
	defer session.Close()

	if err := session.Begin(); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}

	if _, err := session.Exec("UPDATE `scoring_template` SET `is_default` = 0"); err != nil {
		session.Rollback()
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	if _, err := session.Exec("UPDATE `scoring_template` SET `is_default` = 1 WHERE `id` = ?", id); err != nil {
		session.Rollback()
		logger.Error(err)
		return errutil.ErrDBOperation
	}

	if err := session.Commit(); err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	return nil
}

func DeleteTemplate(id int64) error {
	n, err := database.Where("id=?", id).Delete(&model.ScoringTemplate{})
	if err != nil {
		logger.Error(err)
		return errutil.ErrDBOperation
	}
	if n == 0 {
		return errutil.ErrTemplateNotFound
	}
	return nil
}
