package authapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modusplant/plantkit/pkg/authapi"
)

func newSim() *authapi.Simulator {
	return authapi.NewSimulator(authapi.WithLatency(0, 0))
}

func TestSimulatorRequestEmailVerification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("succeeds with code lifetime", func(t *testing.T) {
		t.Parallel()
		res, err := newSim().RequestEmailVerification(ctx, "user@example.com")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "인증코드가 발송되었습니다.", res.Message)
		assert.Equal(t, authapi.SimCodeTTL, res.ExpiresIn)
	})

	t.Run("duplicate address fails as business outcome", func(t *testing.T) {
		t.Parallel()
		res, err := newSim().RequestEmailVerification(ctx, authapi.SimRequestFailEmail)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "이미 가입된 이메일입니다.", res.Message)
		assert.Zero(t, res.ExpiresIn)
	})
}

func TestSimulatorVerifyEmailCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("the fixture code verifies any address", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"a@b.co", "other@example.com"} {
			res, err := newSim().VerifyEmailCode(ctx, email, authapi.SimVerificationCode)
			require.NoError(t, err)
			assert.True(t, res.Success)
		}
	})

	t.Run("any other code is rejected", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{"", "000000", "1234567"} {
			res, err := newSim().VerifyEmailCode(ctx, "a@b.co", code)
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, "인증코드가 일치하지 않습니다.", res.Message)
		}
	})
}

func TestSimulatorCheckNickname(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("reserved names rejected case-insensitively", func(t *testing.T) {
		t.Parallel()
		for _, n := range []string{"admin", "ADMIN", "Test", "modusplant", "MODUSPLANT", "모두의식물"} {
			res, err := newSim().CheckNickname(ctx, n)
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.False(t, res.Available, "nickname %q", n)
			assert.Equal(t, "사용 중인 닉네임입니다.", res.Message)
		}
	})

	t.Run("anything else is available", func(t *testing.T) {
		t.Parallel()
		res, err := newSim().CheckNickname(ctx, "식물집사")
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, "사용 가능한 닉네임입니다.", res.Message)
	})
}

func TestSimulatorSignup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		res, err := newSim().Signup(ctx, authapi.SignupRequest{Email: authapi.SimDuplicateEmail})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "이미 가입된 이메일입니다.", res.Message)
		assert.Nil(t, res.User)
	})

	t.Run("success returns the new user", func(t *testing.T) {
		t.Parallel()
		req := authapi.SignupRequest{Email: "new@example.com", Nickname: "새싹"}
		res, err := newSim().Signup(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.Success)
		require.NotNil(t, res.User)
		assert.Equal(t, req.Email, res.User.Email)
		assert.Equal(t, req.Nickname, res.User.Nickname)
		assert.NotEmpty(t, res.User.ID)
	})
}

func TestSimulatorLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("test account succeeds with mock token", func(t *testing.T) {
		t.Parallel()
		res, err := newSim().Login(ctx, authapi.LoginRequest{
			Email:    authapi.SimTestEmail,
			Password: authapi.SimTestPassword,
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, authapi.SimToken, res.Token)
		require.NotNil(t, res.User)
		assert.Equal(t, authapi.SimTestEmail, res.User.Email)
	})

	t.Run("wrong password fails as business outcome", func(t *testing.T) {
		t.Parallel()
		res, err := newSim().Login(ctx, authapi.LoginRequest{
			Email:    authapi.SimTestEmail,
			Password: "wrong",
		})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", res.Message)
		assert.Nil(t, res.User)
	})
}

func TestSimulatorHonorsContext(t *testing.T) {
	t.Parallel()

	sim := authapi.NewSimulator(authapi.WithLatency(5*time.Second, 5*time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sim.Login(ctx, authapi.LoginRequest{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	apiErr, ok := authapi.AsError(err)
	require.True(t, ok)
	assert.Equal(t, authapi.CodeNetworkError, apiErr.Code)
}

func TestNewSelectsBackend(t *testing.T) {
	t.Parallel()

	_, isSim := authapi.New(authapi.Config{UseMock: true}).(*authapi.Simulator)
	assert.True(t, isSim)

	_, isHTTP := authapi.New(authapi.Config{BaseURL: "http://localhost:8080"}).(*authapi.HTTPClient)
	assert.True(t, isHTTP)
}
