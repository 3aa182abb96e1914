package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/twmb/franz-go/pkg/kgo"

	"oba/internal/cms"
	consenthandler "oba/internal/consent/handler"
	consentservice "oba/internal/consent/service"
	"oba/internal/consentdata"
	"oba/internal/consentdata/store"
	"oba/internal/ledgers"
	"oba/internal/loginattempt"
	paymenthandler "oba/internal/payment/handler"
	paymentservice "oba/internal/payment/service"
	"oba/internal/platform/config"
	"oba/internal/platform/kafka"
	"oba/internal/platform/metrics"
	"oba/internal/platform/postgres"
	"oba/internal/platform/redis"
	"oba/internal/platform/restclient"
	"oba/internal/reference"
	"oba/internal/security"
	audit "oba/pkg/platform/audit"
	"oba/pkg/platform/audit/publisher"
	auditkafka "oba/pkg/platform/audit/store/kafka"
	auditmemory "oba/pkg/platform/audit/store/memory"
	"oba/pkg/platform/circuit"
	"oba/pkg/platform/httputil"
	"oba/pkg/platform/middleware/admin"
	"oba/pkg/platform/middleware/auth"
	"oba/pkg/platform/middleware/metadata"
	"oba/pkg/platform/middleware/request"
	"oba/pkg/platform/middleware/requesttime"
	"oba/pkg/platform/tx"
)

const auditBuffer = 1024

type application struct {
	router  http.Handler
	closers []func()
}

func (a *application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

type upstreams struct {
	cmsRest *restclient.Client
	ledgers *ledgers.Client
	ais     *cms.AisClient
	pis     *cms.PisClient
	data    *cms.ConsentDataClient
}

func build(ctx context.Context, cfg config.Config, log *slog.Logger) (*application, error) {
	app := &application{}
	fail := func(err error) (*application, error) {
		app.close()
		return nil, err
	}

	var m *metrics.Metrics
	reg := prometheus.NewRegistry()
	if cfg.Server.MetricsEnabled {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fail(err)
	}
	if redisClient != nil {
		app.closers = append(app.closers, func() { _ = redisClient.Close() })
	}
	db, err := postgres.New(ctx, cfg.Postgres)
	if err != nil {
		return fail(err)
	}
	if db != nil {
		app.closers = append(app.closers, func() { _ = db.Close() })
	}

	emitter, err := newAuditPublisher(ctx, cfg.Kafka, log, app)
	if err != nil {
		return fail(err)
	}

	up := newUpstreams(cfg, m, log)

	backend, err := newConsentDataStore(ctx, cfg, up.data, redisClient, db, log)
	if err != nil {
		return fail(err)
	}
	dataOpts := []consentdata.Option{
		consentdata.WithMaxLoginAttempts(cfg.Login.MaxAttempts),
		consentdata.WithLogger(log),
		consentdata.WithMetrics(m, string(cfg.ConsentData.Backend)),
	}
	if cfg.ConsentData.Backend == config.BackendPostgres {
		dataOpts = append(dataOpts, consentdata.WithTxRunner(tx.NewSQLRunner(db, cfg.Postgres.TxTimeout)))
	}
	data, err := consentdata.New(backend, dataOpts...)
	if err != nil {
		return fail(err)
	}

	attempts, err := loginattempt.New(data, up.pis, up.ais,
		loginattempt.WithLogger(log),
		loginattempt.WithMetrics(m),
		loginattempt.WithAuditPublisher(emitter),
	)
	if err != nil {
		return fail(err)
	}

	policy := reference.NewPolicy(cfg.Security.ReferenceSigningKey, cfg.Security.ReferenceTTL)
	cipher, err := security.NewCipher(cfg.Security.IDEncryptionKey)
	if err != nil {
		return fail(err)
	}

	payments, err := paymentservice.New(policy, up.ledgers, up.pis, data, attempts,
		paymentservice.WithLogger(log),
		paymentservice.WithMetrics(m),
		paymentservice.WithAuditPublisher(emitter),
	)
	if err != nil {
		return fail(err)
	}
	consentOpts := []consentservice.Option{
		consentservice.WithLogger(log),
		consentservice.WithMetrics(m),
		consentservice.WithAuditPublisher(emitter),
	}
	consents, err := consentservice.New(up.ledgers, up.ais, data, cipher, consentOpts...)
	if err != nil {
		return fail(err)
	}
	redirects, err := consentservice.NewRedirectService(policy, up.ledgers, up.ais, data, attempts, consentOpts...)
	if err != nil {
		return fail(err)
	}

	cookieMaxAge := int(policy.TTL().Seconds())
	secure := cfg.Server.SecureCookies

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recovery(log))
	r.Use(request.Logger(log))
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(chimw.Timeout(cfg.Server.RequestTimeout))

	r.Get("/health", healthHandler(up, redisClient, db))
	if m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	paymenthandler.New(reference.TypePIS, payments, policy, cfg.Login.PageURL, log,
		paymenthandler.WithCookies(cookieMaxAge, secure)).Register(r)
	paymenthandler.New(reference.TypePISCancellation, payments, policy, cfg.Login.PageURL, log,
		paymenthandler.WithCookies(cookieMaxAge, secure)).Register(r)
	consenthandler.NewAisHandler(redirects, policy, cfg.Login.PageURL, log,
		consenthandler.WithCookies(cookieMaxAge, secure)).Register(r)
	consenthandler.NewConsentsHandler(consents, log,
		auth.RequireAuth(ledgers.NewTokenValidator(up.ledgers), log)).Register(r)

	if cfg.Server.AdminToken != "" {
		r.Route("/admin", func(r chi.Router) {
			r.Use(admin.RequireAdminToken(cfg.Server.AdminToken, log))
			consentdata.NewAdminHandler(data, emitter, log).Register(r)
		})
	}

	app.router = r
	return app, nil
}

func newUpstreams(cfg config.Config, m *metrics.Metrics, log *slog.Logger) upstreams {
	rest := func(name string, u config.Upstream) *restclient.Client {
		return restclient.New(name, u.BaseURL, u.Timeout,
			restclient.WithMetrics(m),
			restclient.WithLogger(log),
			restclient.WithBreaker(circuit.New(name, circuit.WithFailureThreshold(u.FailureThreshold))),
		)
	}
	ledgersRest := rest("ledgers", cfg.Ledgers)
	cmsRest := rest("cms", cfg.CMS)
	return upstreams{
		cmsRest: cmsRest,
		ledgers: ledgers.New(ledgersRest),
		ais:     cms.NewAisClient(cmsRest),
		pis:     cms.NewPisClient(cmsRest),
		data:    cms.NewConsentDataClient(cmsRest),
	}
}

// newConsentDataStore picks the configured backend. Redis and Postgres fall
// back to process memory while their circuit is open.
func newConsentDataStore(ctx context.Context, cfg config.Config, cmsData *cms.ConsentDataClient, redisClient *redis.Client, db *sql.DB, log *slog.Logger) (consentdata.Store, error) {
	withFallback := func(name string, primary store.Backend) consentdata.Store {
		return store.NewFallbackStore(primary, store.NewInMemoryStore(), circuit.New(name), log)
	}
	switch cfg.ConsentData.Backend {
	case config.BackendCMS:
		return store.NewCMSStore(cmsData), nil
	case config.BackendMemory:
		return store.NewInMemoryStore(), nil
	case config.BackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("consent data backend %q requires REDIS_URL", cfg.ConsentData.Backend)
		}
		return withFallback("consent-data-redis", store.NewRedisStore(redisClient.Client, cfg.ConsentData.TTL)), nil
	case config.BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("consent data backend %q requires DATABASE_URL", cfg.ConsentData.Backend)
		}
		pg := store.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return withFallback("consent-data-postgres", pg), nil
	default:
		return nil, fmt.Errorf("unknown consent data backend %q", cfg.ConsentData.Backend)
	}
}

// newAuditPublisher ships audit events to Kafka when brokers are configured
// and keeps them in memory otherwise.
func newAuditPublisher(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger, app *application) (*publisher.Publisher, error) {
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	var sink audit.Store = auditmemory.NewInMemoryStore()
	if producer != nil {
		if err := kafka.EnsureTopic(ctx, producer, cfg.AuditTopic, cfg.Partitions); err != nil {
			producer.Close()
			return nil, err
		}
		app.closers = append(app.closers, closeProducer(producer))
		sink = auditkafka.New(producer, cfg.AuditTopic)
	}
	p := publisher.NewPublisher(sink, publisher.WithAsyncBuffer(auditBuffer), publisher.WithLogger(log))
	app.closers = append(app.closers, p.Close)
	return p, nil
}

func closeProducer(client *kgo.Client) func() {
	return func() {
		_ = client.Flush(context.Background())
		client.Close()
	}
}

type healthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func healthHandler(up upstreams, redisClient *redis.Client, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		resp := healthStatus{Status: "ok", Components: map[string]string{}}
		check := func(name string, err error) {
			if err != nil {
				resp.Status = "degraded"
				resp.Components[name] = err.Error()
				return
			}
			resp.Components[name] = "ok"
		}

		check("ledgers", breakerErr(up.ledgers.Healthy()))
		check("cms", breakerErr(up.cmsRest.Healthy()))
		if redisClient != nil {
			check("redis", redisClient.Health(ctx))
		}
		if db != nil {
			check("postgres", db.PingContext(ctx))
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}

func breakerErr(healthy bool) error {
	if healthy {
		return nil
	}
	return errors.New("circuit open")
}
