package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/client/client"
	"github.com/dmitrijs2005/scriptoria/internal/client/config"
	"github.com/dmitrijs2005/scriptoria/internal/common"
)

// Client is the server API the commands need.
type Client interface {
	Close() error
	SignUp(ctx context.Context, userName, email string, password, confirm []byte) error
	Login(ctx context.Context, email string, password []byte) (*api.LoginResponse, error)
	Logout(ctx context.Context) error
	Generate(ctx context.Context, title, idea, language string) (*api.Record, error)
	History(ctx context.Context, limit int) ([]*api.Record, error)
	Get(ctx context.Context, id int64) (*api.Record, error)
	Export(ctx context.Context, id int64, format string) (*api.ExportResponse, error)
}

type App struct {
	config   *config.Config
	client   Client
	reader   *bufio.Reader
	out      io.Writer
	email    string
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewScriptoriaClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Scriptoria")+" (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, a.reader)

	if a.isLoggedIn() {
		_ = a.Logout(ctx)
	}
	return a.client.Close()
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// checkSession forgets the local session when the server no longer
// accepts it.
func (a *App) checkSession(err error) error {
	if errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrorUnauthorized) {
		a.email, a.userName = "", ""
		return errSessionEnded
	}
	return err
}

var errSessionEnded = errors.New("your session has expired, please log in again")
