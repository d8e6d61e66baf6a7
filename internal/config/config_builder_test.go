package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MasterPassword: "correct horse",
			KDFSalt:        testSalt,
		},
		Storage: Storage{DB: DB{DSN: "vault.db"}},
		Server: Server{
			HTTPAddress:    "localhost:8087",
			RequestTimeout: time.Second,
		},
		Workers: Workers{DecryptConcurrency: 1},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source keeps its values
// and later sources only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "from-env.db"}}},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "from-flags.db"}},
			App:     App{MasterPassword: "pw", KDFSalt: testSalt},
		},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "pw", cfg.App.MasterPassword)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultDecryptConcurrency, cfg.Workers.DecryptConcurrency)
	assert.Equal(t, defaultTokenIssuer, cfg.Server.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.Server.TokenDuration)
	assert.Equal(t, defaultRequestTimeout, cfg.Client.RequestTimeout)
	assert.False(t, cfg.Server.AuthEnabled())
	assert.False(t, cfg.Client.IsRemote())
}

func TestBuild_DefaultsDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	explicit := validConfig()
	explicit.Workers.DecryptConcurrency = 16
	b.configs = append(b.configs, explicit)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers.DecryptConcurrency)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append([]*StructuredConfig{{Workers: Workers{DecryptConcurrency: -1}}}, b.configs...)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestBuild_DefaultsOnlyNeedNoKeyMaterial(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.ValidateLocalVault(), ErrInvalidStorageConfigs)
}

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DATABASE_URI": "env.db"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeJSONFile(t, `{"storage": {"db": {"dsn": "first.db"}}}`)
	second := writeJSONFile(t, `{"storage": {"db": {"dsn": "second.db"}}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first.db", b.configs[2].Storage.DB.DSN)
}

func TestWithJSON_RecordsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "key material is not checked", mutate: func(c *StructuredConfig) {
			c.Storage.DB.DSN = ""
			c.App = App{}
		}},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero concurrency", mutate: func(c *StructuredConfig) { c.Workers.DecryptConcurrency = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "sign key without issuer", mutate: func(c *StructuredConfig) {
			c.Server.TokenSignKey = "k"
			c.Server.TokenDuration = time.Hour
		}, wantErr: ErrInvalidServerConfigs},
		{name: "sign key with issuer and duration", mutate: func(c *StructuredConfig) {
			c.Server.TokenSignKey = "k"
			c.Server.TokenIssuer = "iss"
			c.Server.TokenDuration = time.Hour
		}},
		{name: "remote mode skips local material", mutate: func(c *StructuredConfig) {
			*c = StructuredConfig{Client: Client{RemoteAddress: "http://localhost:8087", RequestTimeout: time.Second}}
		}},
		{name: "remote mode zero timeout", mutate: func(c *StructuredConfig) {
			*c = StructuredConfig{Client: Client{RemoteAddress: "http://localhost:8087"}}
		}, wantErr: ErrInvalidClientConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateLocalVault(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no master password", mutate: func(c *StructuredConfig) { c.App.MasterPassword = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "salt not base64", mutate: func(c *StructuredConfig) { c.App.KDFSalt = "***" }, wantErr: ErrInvalidAppConfigs},
		{name: "salt too short", mutate: func(c *StructuredConfig) { c.App.KDFSalt = "c2hvcnQ=" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.ValidateLocalVault()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Salt(t *testing.T) {
	salt, err := App{KDFSalt: testSalt}.Salt()
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), salt)
}
