package services

import (
	portsrepo "github.com/quillbooks/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/quillbooks/pocket_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first: accounts, rates and balances all resolve precision
	// through it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Account = NewAccountService(repos.AccountRepo, container.Currency)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account)
	container.Balance = NewBalanceService(repos.AccountRepo, repos.JournalRepo, container.Currency)
	container.Reporting = NewReportingService(container.Balance)

	return container
}
