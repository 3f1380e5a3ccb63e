package repositories

// RepositoryProvider holds all repository implementations and is used to
// inject them into the service layer.
type RepositoryProvider struct {
	UserRepo UserRepositoryFacade
}
