package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/lonng/twmj/db"
	"github.com/lonng/twmj/internal/errutil"
	"github.com/lonng/twmj/internal/rule"
	"github.com/lonng/twmj/internal/transfer"
	"github.com/lonng/twmj/internal/whitelist"
	"github.com/lonng/twmj/protocol"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pingHand = `{
	"tiles": ["m1","m2","m3","m5","m6","m7","t2","t3","t4","t3","t4","t5","s7","s8","s9","t9","t9"],
	"seat": 1, "wind": "east", "winning_tile": "m1",
	"self_draw": true, "concealed": true%s
}`

var server *httptest.Server

func TestMain(m *testing.M) {
	dbCloser := db.MustStartup(db.DriverSQLite, ":memory:", db.MaxOpenConns(1), db.MaxIdleConns(1))
	transferCloser := transfer.MustStartup(transfer.NewMemory())
	server = httptest.NewServer(startupService())

	code := m.Run()

	server.Close()
	transferCloser()
	dbCloser()
	os.Exit(code)
}

func call(t *testing.T, method, path, body string, out interface{}) {
	req, err := http.NewRequest(method, server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	require.NoError(t, json.Unmarshal(data, out), string(data))
}

func expectError(t *testing.T, method, path, body string, want error) {
	resp := protocol.ErrorResponse{}
	call(t, method, path, body, &resp)
	assert.Equal(t, errutil.Code(want), resp.Code, "%s %s: %s", method, path, resp.Error)
}

func TestPing(t *testing.T) {
	var pong string
	call(t, "GET", "/ping", "", &pong)
	assert.Equal(t, "pong", pong)

	resp := protocol.StringResponse{}
	call(t, "OPTIONS", "/v1/score", "", &resp)
	assert.Equal(t, "success", resp.Data)
}

func TestScore(t *testing.T) {
	resp := protocol.ScoreResponse{}
	call(t, "POST", "/v1/score", fmt.Sprintf(pingHand, ""), &resp)
	require.NotNil(t, resp.ScoreResult)
	assert.Equal(t, 17.0, resp.Value)
	assert.Equal(t, []string{"門清自摸 +5", "無字花大平胡 +12"}, resp.Log)
	assert.NotZero(t, resp.TemplateID)

	expectError(t, "POST", "/v1/score", `{"tiles":"m1 m2 x9","seat":1,"wind":"east"}`, errutil.ErrUnknownTile)
	expectError(t, "POST", "/v1/score", `{"tiles":{"bak":4,"white":4},"seat":1,"wind":"east"}`, errutil.ErrTooManyCopies)
	expectError(t, "POST", "/v1/score", fmt.Sprintf(pingHand, `,"seat":9`), errutil.ErrIllegalContext)
	expectError(t, "POST", "/v1/score", fmt.Sprintf(pingHand, `,"template_id":424242`), errutil.ErrTemplateNotFound)
	expectError(t, "POST", "/v1/score", `{"tiles":`, errutil.ErrIllegalParameter)
}

func TestDecomposeAndRules(t *testing.T) {
	var r struct {
		Valid      bool              `json:"valid"`
		Candidates []json.RawMessage `json:"candidates"`
	}
	call(t, "POST", "/v1/decompose", `{"tiles":"m1 m1 m1 m2 m2 m2 m3 m3 m3 t1 t2 t3 t4 t5 t6 s5 s5"}`, &r)
	assert.True(t, r.Valid)
	assert.Len(t, r.Candidates, 2)

	rules := protocol.RuleListResponse{}
	call(t, "GET", "/v1/rules", "", &rules)
	assert.Equal(t, rule.Count, rules.Total)
}

func TestTemplates(t *testing.T) {
	list := protocol.TemplateListResponse{}
	call(t, "GET", "/v1/templates/", "", &list)
	require.NotEmpty(t, list.Data)
	seed := list.Data[0]
	assert.True(t, seed.IsDefault)

	created := protocol.Template{}
	call(t, "POST", "/v1/templates/", `{"name":"club","rules":{"base_value":10,"multiplier_value":2}}`, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, 10.0, created.Rules["base_value"])

	path := fmt.Sprintf("/v1/templates/%d", created.ID)
	got := protocol.Template{}
	call(t, "GET", path, "", &got)
	assert.Equal(t, "club", got.Name)

	call(t, "PUT", path, `{"name":"club v2","rules":{"base_value":20,"multiplier_value":2}}`, &got)
	assert.Equal(t, "club v2", got.Name)

	call(t, "POST", path+"/default", "", &got)
	assert.True(t, got.IsDefault)

	// the default template now scores every request without a template id
	resp := protocol.ScoreResponse{}
	call(t, "POST", "/v1/score", fmt.Sprintf(pingHand, ""), &resp)
	assert.Equal(t, created.ID, resp.TemplateID)
	assert.Equal(t, 17*2+20.0, resp.Value)

	call(t, "POST", fmt.Sprintf("/v1/templates/%d/default", seed.ID), "", &got)
	ok := protocol.StringResponse{}
	call(t, "DELETE", path, "", &ok)
	assert.Equal(t, "success", ok.Data)

	expectError(t, "GET", path, "", errutil.ErrTemplateNotFound)
	expectError(t, "POST", "/v1/templates/", `{"name":"broken","rules":{"zhuang_value":2}}`, errutil.ErrMissingBaseValue)
	expectError(t, "POST", "/v1/templates/", `{"name":"","rules":{"base_value":0,"multiplier_value":1}}`, errutil.ErrInvalidParameter)
}

func TestTransfer(t *testing.T) {
	rec := protocol.TransferRecord{}
	call(t, "POST", "/v1/templates/export", `{"name":"shared","rules":{"base_value":1,"multiplier_value":1}}`, &rec)
	require.Len(t, rec.UUID, 36)

	got := protocol.TransferRecord{}
	call(t, "GET", "/v1/templates/import/"+rec.UUID, "", &got)
	assert.Equal(t, "shared", got.Template.Name)
	assert.Equal(t, rec.ExpiresAt, got.ExpiresAt)

	body := fmt.Sprintf(`{"uuid":%q,"name":"again","rules":{"base_value":1,"multiplier_value":1}}`, rec.UUID)
	expectError(t, "POST", "/v1/templates/export", body, errutil.ErrTransferExists)
	expectError(t, "GET", "/v1/templates/import/0b8e3c4a-5f2d-4c1b-9a7e-3d2f1e0c9b8a", "", errutil.ErrTransferNotFound)
}

func TestHistory(t *testing.T) {
	ok := protocol.StringResponse{}
	call(t, "DELETE", "/v1/history/", "", &ok)

	for i := 0; i < 3; i++ {
		resp := protocol.ScoreResponse{}
		call(t, "POST", "/v1/score", fmt.Sprintf(pingHand, fmt.Sprintf(`,"save":true,"name":"hand %d"`, i)), &resp)
		require.NotZero(t, resp.RecordID)
	}

	list := protocol.RecordListResponse{}
	call(t, "GET", "/v1/history/?offset=1&count=1", "", &list)
	assert.EqualValues(t, 3, list.Total)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "hand 1", list.Data[0].Name)

	path := fmt.Sprintf("/v1/history/%d", list.Data[0].ID)
	rec := protocol.Record{}
	call(t, "GET", path, "", &rec)
	require.NotNil(t, rec.Result)
	assert.Equal(t, 17.0, rec.Result.Value)

	call(t, "DELETE", path, "", &ok)
	expectError(t, "GET", path, "", errutil.ErrHistoryNotFound)
	expectError(t, "GET", "/v1/history/0", "", errutil.ErrInvalidParameter)

	call(t, "DELETE", "/v1/history/", "", &ok)
	call(t, "GET", "/v1/history/", "", &list)
	assert.Zero(t, list.Total)
}

func TestWhiteList(t *testing.T) {
	require.NoError(t, whitelist.Setup([]string{`10\.0\.0\.1`}))
	defer whitelist.ClearIPList()

	expectError(t, "DELETE", "/v1/history/", "", errutil.ErrPermissionDenied)
	expectError(t, "POST", "/v1/score", fmt.Sprintf(pingHand, `,"save":true`), errutil.ErrPermissionDenied)

	// reads stay open
	resp := protocol.ScoreResponse{}
	call(t, "POST", "/v1/score", fmt.Sprintf(pingHand, ""), &resp)
	assert.Equal(t, 17.0, resp.Value)
}

func TestEnableWhiteList(t *testing.T) {
	viper.Set("whitelist.ip", []string{`192\.168\.0\.[0-9]+`, `10\.0\.0\.1`})
	defer viper.Set("whitelist.ip", nil)
	defer whitelist.ClearIPList()

	enableWhiteList()
	assert.True(t, whitelist.Enabled())
	assert.Equal(t, []string{`10\.0\.0\.1`, `192\.168\.0\.[0-9]+`}, whitelist.IPList())
	assert.True(t, whitelist.VerifyAddr("192.168.0.17:5000"))
}
