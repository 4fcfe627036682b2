package repositories

// RepositoryProvider bundles every repository the service container needs.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryWithTx
	CurrencyRepo     CurrencyRepositoryFacade
	JournalRepo      JournalRepositoryWithTx
	ExchangeRateRepo ExchangeRateRepositoryFacade
}
