package pagination

// PageDefaultSize is the page size used when none is requested.
const PageDefaultSize = 20

// PageMaxSize caps the requested page size.
const PageMaxSize = 100
