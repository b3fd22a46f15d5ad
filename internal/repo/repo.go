package repo

import (
	"github.com/GlebRadaev/adhub/internal/pg"
	connectionrepo "github.com/GlebRadaev/adhub/internal/repo/connection-repo"
	ledgerrepo "github.com/GlebRadaev/adhub/internal/repo/ledger-repo"
	registrationrepo "github.com/GlebRadaev/adhub/internal/repo/registration-repo"
	"github.com/GlebRadaev/adhub/internal/service/domainservice"
	"github.com/GlebRadaev/adhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/adhub/internal/service/oauthservice"
)

type Repositories struct {
	ConnectionRepo   oauthservice.Repo
	LedgerRepo       ledgerservice.Repo
	RegistrationRepo domainservice.Repo
}

func New(conn pg.Database, sealer connectionrepo.Sealer) *Repositories {
	return &Repositories{
		ConnectionRepo:   connectionrepo.New(conn, sealer),
		LedgerRepo:       ledgerrepo.New(conn),
		RegistrationRepo: registrationrepo.New(conn),
	}
}
