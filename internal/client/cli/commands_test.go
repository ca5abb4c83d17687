package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/client/client"
	"github.com/dmitrijs2005/scriptoria/internal/client/config"
	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeClient struct {
	signUp      []string
	signUpErr   error
	loginErr    error
	logoutCalls int

	generated []string
	genErr    error

	history    []*api.Record
	historyErr error
	limit      int

	getID  int64
	getErr error

	exportID     int64
	exportFormat string
	exportErr    error

	closed bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) SignUp(_ context.Context, userName, email string, password, confirm []byte) error {
	f.signUp = []string{userName, email, string(password), string(confirm)}
	return f.signUpErr
}

func (f *fakeClient) Login(_ context.Context, email string, _ []byte) (*api.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &api.LoginResponse{AccessToken: "tok", Email: email, Username: "ana"}, nil
}

func (f *fakeClient) Logout(context.Context) error { f.logoutCalls++; return nil }

func (f *fakeClient) Generate(_ context.Context, title, idea, language string) (*api.Record, error) {
	f.generated = []string{title, idea, language}
	if f.genErr != nil {
		return nil, f.genErr
	}
	return &api.Record{Id: 3, Title: title, Language: "English", Content: "# Logline\nA heist.", CreatedAt: timestamppb.Now()}, nil
}

func (f *fakeClient) History(_ context.Context, limit int) ([]*api.Record, error) {
	f.limit = limit
	return f.history, f.historyErr
}

func (f *fakeClient) Get(_ context.Context, id int64) (*api.Record, error) {
	f.getID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &api.Record{Id: id, Title: "Moon", Content: "body text", CreatedAt: timestamppb.Now()}, nil
}

func (f *fakeClient) Export(_ context.Context, id int64, format string) (*api.ExportResponse, error) {
	f.exportID, f.exportFormat = id, format
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return &api.ExportResponse{FileName: "../scriptoria_20250101_1200." + format, Data: []byte("data")}, nil
}

func newTestApp(t *testing.T, c *fakeClient) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ExportDir = filepath.Join(t.TempDir(), "exports")
	return &App{config: cfg, client: c, reader: bufio.NewReader(strings.NewReader("")), out: &out}, &out
}

// stubInputs answers text prompts in order and every password prompt with pw.
func stubInputs(t *testing.T, pw string, answers ...string) {
	t.Helper()
	origST, origML, origGP, origRM := getSimpleText, getMultiline, getPassword, renderMarkdown
	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	renderMarkdown = func(md string) (string, error) { return "rendered:" + md, nil }
	t.Cleanup(func() {
		getSimpleText, getMultiline, getPassword, renderMarkdown = origST, origML, origGP, origRM
	})
}

func TestSignUp_SendsFieldsAndStaysLoggedOut(t *testing.T) {
	stubInputs(t, "Str0ng!pw", "ana", "ana@x.io")
	c := &fakeClient{}
	app, out := newTestApp(t, c)

	require.NoError(t, app.SignUp(context.Background()))
	assert.Equal(t, []string{"ana", "ana@x.io", "Str0ng!pw", "Str0ng!pw"}, c.signUp)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Account created")
}

func TestSignUp_ReturnsServerError(t *testing.T) {
	stubInputs(t, "Str0ng!pw", "ana", "ana@x.io")
	c := &fakeClient{signUpErr: &client.RemoteError{Kind: common.ErrDuplicateEmail, Message: common.ErrDuplicateEmail.Error()}}
	app, _ := newTestApp(t, c)

	err := app.SignUp(context.Background())
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestLoginAndLogout(t *testing.T) {
	stubInputs(t, "Str0ng!pw", "ana@x.io")
	c := &fakeClient{}
	app, out := newTestApp(t, c)

	require.NoError(t, app.Login(context.Background()))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(ana@x.io)", app.getStatus())
	assert.Contains(t, out.String(), "Welcome, ana!")

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, 1, c.logoutCalls)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stubInputs(t, "nope", "ana@x.io")
	c := &fakeClient{loginErr: &client.RemoteError{Kind: common.ErrInvalidCredentials, Message: common.ErrInvalidCredentials.Error()}}
	app, _ := newTestApp(t, c)

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, app.isLoggedIn())
}

func TestGenerate_PrintsRenderedRecord(t *testing.T) {
	stubInputs(t, "", "Moon", "a heist", "")
	c := &fakeClient{}
	app, out := newTestApp(t, c)
	app.email = "ana@x.io"

	require.NoError(t, app.Generate(context.Background()))
	assert.Equal(t, []string{"Moon", "a heist", ""}, c.generated)
	assert.Contains(t, out.String(), "#3 Moon")
	assert.Contains(t, out.String(), "rendered:# Logline")
}

func TestGenerate_ExpiredSessionLogsOut(t *testing.T) {
	stubInputs(t, "", "Moon", "a heist", "")
	c := &fakeClient{genErr: &client.RemoteError{Kind: common.ErrTokenExpired, Message: common.ErrTokenExpired.Error()}}
	app, _ := newTestApp(t, c)
	app.email = "ana@x.io"

	err := app.Generate(context.Background())
	assert.ErrorIs(t, err, errSessionEnded)
	assert.False(t, app.isLoggedIn())
}

func TestGenerate_InfrastructureKeepsSession(t *testing.T) {
	stubInputs(t, "", "Moon", "a heist", "")
	c := &fakeClient{genErr: &client.RemoteError{Kind: common.ErrInfrastructure, Message: common.ErrInfrastructure.Error()}}
	app, _ := newTestApp(t, c)
	app.email = "ana@x.io"

	err := app.Generate(context.Background())
	assert.ErrorIs(t, err, common.ErrInfrastructure)
	assert.True(t, app.isLoggedIn())
}

func TestHistory(t *testing.T) {
	c := &fakeClient{history: []*api.Record{
		{Id: 2, Title: "Second", Language: "Hindi", CreatedAt: timestamppb.Now()},
		{Id: 1, Title: "First", Language: "English", CreatedAt: timestamppb.Now()},
	}}
	app, out := newTestApp(t, c)
	app.email = "ana@x.io"

	require.NoError(t, app.History(context.Background()))
	assert.Equal(t, common.HistoryDisplayLimit, c.limit)
	s := out.String()
	assert.Less(t, strings.Index(s, "Second"), strings.Index(s, "First"))
	assert.Contains(t, s, "Hindi")
}

func TestHistory_Empty(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{})
	require.NoError(t, app.History(context.Background()))
	assert.Contains(t, out.String(), "Nothing generated yet.")
}

func TestShow(t *testing.T) {
	stubInputs(t, "", "9")
	c := &fakeClient{}
	app, out := newTestApp(t, c)

	require.NoError(t, app.Show(context.Background(), []string{"4"}))
	assert.Equal(t, int64(4), c.getID)
	assert.Contains(t, out.String(), "rendered:body text")

	require.NoError(t, app.Show(context.Background(), nil))
	assert.Equal(t, int64(9), c.getID)

	err := app.Show(context.Background(), []string{"abc"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestExport_WritesIntoExportDir(t *testing.T) {
	stubInputs(t, "", "docx")
	c := &fakeClient{}
	app, out := newTestApp(t, c)

	require.NoError(t, app.Export(context.Background(), []string{"5", "pdf"}))
	assert.Equal(t, int64(5), c.exportID)
	assert.Equal(t, "pdf", c.exportFormat)

	path := filepath.Join(app.config.ExportDir, "scriptoria_20250101_1200.pdf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.Contains(t, out.String(), "Saved "+path)

	require.NoError(t, app.Export(context.Background(), []string{"5"}))
	assert.Equal(t, "docx", c.exportFormat)
}

func TestRun_ClosesClientAndLogsOut(t *testing.T) {
	captureOutput(t)
	c := &fakeClient{}
	app, _ := newTestApp(t, c)
	app.email = "ana@x.io"
	app.reader = bufio.NewReader(strings.NewReader("exit\n"))

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, c.closed)
	assert.Equal(t, 1, c.logoutCalls)
}
