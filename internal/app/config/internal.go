package config

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Enrichment AppEnrichment
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	Timezone                    string
	EndpointPrefix              string
	MaxRequests                 int
	ShutdownTimeoutInSeconds    int
	RequestTimeoutInSeconds     int
	RequestBodyLimitInMegabyte  int
	SessionStore                string
	SessionExpiredTimeInMinutes int
}

type AppJWT struct {
	Secret string
}

// AppEnrichment configures the hand-off of finished intake documents to the
// enrichment agent.
type AppEnrichment struct {
	Enabled bool
	Queue   string
}
