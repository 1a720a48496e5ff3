package valid

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/valid/pkg/i18n"
	"github.com/dmitrymomot/valid/pkg/logger"
	"github.com/dmitrymomot/valid/pkg/validator"
)

//go:embed locales
var builtinLocales embed.FS

// Engine binds a message catalogue, a logger and parallelism settings to
// validation runs. It is safe for concurrent use.
type Engine struct {
	cfg        Config
	logger     *slog.Logger
	translator *i18n.Translator
	locale     string
}

// Option configures New.
type Option func(*engineOptions)

type engineOptions struct {
	logger   *slog.Logger
	output   io.Writer
	adapters []i18n.TranslationAdapter
}

// WithLogger makes the engine log through l instead of building its own logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLogOutput sets where the engine's own logger writes. Default is stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *engineOptions) {
		if w != nil {
			o.output = w
		}
	}
}

// WithCatalogue layers adapter over the built-in catalogues and the
// configured messages directory.
func WithCatalogue(adapter i18n.TranslationAdapter) Option {
	return func(o *engineOptions) {
		if adapter != nil {
			o.adapters = append(o.adapters, adapter)
		}
	}
}

// New builds an Engine from cfg. Empty fields of cfg take the values of DefaultConfig.
func New(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.ParallelThreshold < 0 || cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: parallel threshold and workers must not be negative", ErrInvalidConfig)
	}

	o := &engineOptions{output: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		log, err = newLogger(cfg, o.output)
		if err != nil {
			return nil, err
		}
	}
	log = log.With(logger.Component("valid"))

	catalogues := i18n.ChainAdapter{i18n.NewFSAdapter(builtinLocales, "locales", nil)}
	if cfg.MessagesDir != "" {
		catalogues = append(catalogues, i18n.NewFSAdapter(os.DirFS(cfg.MessagesDir), ".", nil))
	}
	catalogues = append(catalogues, o.adapters...)

	translator, err := i18n.NewTranslator(ctx, catalogues,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}

	e := &Engine{
		cfg:        cfg,
		logger:     log,
		translator: translator,
		locale:     translator.Match(cfg.Locale),
	}
	if e.locale != cfg.Locale {
		log.InfoContext(ctx, "configured locale resolved", logger.Locale(e.locale), slog.String("requested", cfg.Locale))
	}
	log.DebugContext(ctx, "validation engine ready",
		logger.Locale(e.locale),
		slog.Any("languages", translator.SupportedLanguages()),
		slog.Int("parallel_threshold", cfg.ParallelThreshold),
	)
	return e, nil
}

func newLogger(cfg Config, output io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(output),
		logger.WithContextExtractors(localeFromContext),
	), nil
}

func localeFromContext(ctx context.Context) (slog.Attr, bool) {
	locale, ok := i18n.LocaleFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Locale(locale), true
}

// Config returns the effective configuration, defaults included.
func (e *Engine) Config() Config {
	return e.cfg
}

// Locale returns the language used when a context carries none.
func (e *Engine) Locale() string {
	return e.locale
}

func (e *Engine) Translator() *i18n.Translator {
	return e.translator
}

func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Message returns a message strategy rendering failures from the catalogue
// closest to locale. Kinds without a translation keep the built-in English
// message; custom messages are looked up as catalogue keys and kept as is
// when no entry exists.
func (e *Engine) Message(locale string) validator.MessageFunc {
	lang := e.translator.Match(locale)
	return func(f validator.ValidationError) string {
		if f.Kind == validator.KindCustom {
			if e.translator.HasTranslation(lang, f.Message) {
				return e.translator.T(lang, f.Message)
			}
			return f.Message
		}

		key := f.TranslationKey
		if key == "" {
			key = f.Kind.TranslationKey()
		}
		if !e.translator.HasTranslation(lang, key) {
			e.logger.Debug("no translation for failure", logger.Locale(lang), logger.Kind(string(f.Kind)))
			return validator.DefaultMessage(f)
		}
		return e.translator.T(lang, key, string(f.Kind), validator.FormatParam(f.Param()))
	}
}

// Options returns the validation options for the engine's default locale.
func (e *Engine) Options() []validator.Option {
	return e.options(context.Background(), e.locale)
}

// OptionsFor returns the validation options for ctx, using the locale set
// with i18n.SetLocale when present.
func (e *Engine) OptionsFor(ctx context.Context) []validator.Option {
	locale := e.locale
	if l, ok := i18n.LocaleFromContext(ctx); ok {
		locale = l
	}
	return e.options(ctx, locale)
}

func (e *Engine) options(ctx context.Context, locale string) []validator.Option {
	opts := []validator.Option{
		validator.WithContext(ctx),
		validator.WithLogger(e.logger),
		validator.WithMessages(e.Message(locale)),
		validator.WithParallelism(e.cfg.ParallelThreshold),
	}
	if e.cfg.Workers > 0 {
		opts = append(opts, validator.WithWorkers(e.cfg.Workers))
	}
	return opts
}

// Validate checks v against schema with the options of e for ctx.
// A nil engine validates with the built-in English messages.
func Validate[T any](ctx context.Context, e *Engine, schema validator.Schema[T], v T) error {
	if e == nil {
		return schema.Validate(v, validator.WithContext(ctx))
	}
	return schema.Validate(v, e.OptionsFor(ctx)...)
}
