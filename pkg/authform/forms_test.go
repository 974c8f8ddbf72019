package authform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modusplant/plantkit/pkg/authform"
	"github.com/modusplant/plantkit/pkg/validator"
)

func validSignupForm() authform.SignupForm {
	return authform.SignupForm{
		Email:            "user@example.com",
		VerificationCode: "123456",
		Password:         "Test123!",
		PasswordConfirm:  "Test123!",
		Nickname:         "식물집사",
		AgreeToTerms:     true,
		AgreeToPrivacy:   true,
		AgreeToCommunity: true,
	}
}

func TestLoginFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults keep the session", func(t *testing.T) {
		t.Parallel()
		assert.True(t, authform.NewLoginForm().RememberMe)
	})

	t.Run("valid form passes", func(t *testing.T) {
		t.Parallel()
		form := authform.LoginForm{Email: "user@example.com", Password: "pw", RememberMe: true}
		assert.NoError(t, form.Validate())
	})

	t.Run("short password is accepted at login", func(t *testing.T) {
		t.Parallel()
		// Login does not re-enforce the signup minimum; the server owns
		// credential checks.
		form := authform.LoginForm{Email: "user@example.com", Password: "x"}
		assert.NoError(t, form.Validate())
	})

	t.Run("empty fields collected in one pass", func(t *testing.T) {
		t.Parallel()
		errs := validator.ExtractValidationErrors(authform.LoginForm{}.Validate())
		require.NotNil(t, errs)
		assert.Equal(t, "이메일을 입력해주세요", errs.First("email"))
		assert.Equal(t, "비밀번호를 입력해주세요", errs.First("password"))
	})

	t.Run("format error when email present but malformed", func(t *testing.T) {
		t.Parallel()
		errs := validator.ExtractValidationErrors(authform.LoginForm{Email: "nope", Password: "pw"}.Validate())
		require.NotNil(t, errs)
		assert.Equal(t, "올바른 이메일을 입력해주세요", errs.First("email"))
	})
}

func TestSignupFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid form passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validSignupForm().Validate())
	})

	t.Run("weak password rejected with policy message", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.Password = "test123!" // no uppercase
		form.PasswordConfirm = form.Password
		errs := validator.ExtractValidationErrors(form.Validate())
		require.NotNil(t, errs)
		assert.Equal(t,
			"영문 대소문자, 숫자, 특수문자를 포함한 8자 이상의 비밀번호로 입력해주세요",
			errs.First("password"))
	})

	t.Run("mismatch attaches to passwordConfirm", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.PasswordConfirm = "Other123!"
		errs := validator.ExtractValidationErrors(form.Validate())
		require.NotNil(t, errs)
		assert.False(t, errs.Has("password"))
		assert.Equal(t, "비밀번호가 서로 일치하지 않습니다", errs.First("passwordConfirm"))
	})

	t.Run("empty confirm reports presence first", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.PasswordConfirm = ""
		errs := validator.ExtractValidationErrors(form.Validate())
		require.NotNil(t, errs)
		assert.Equal(t, "비밀번호 확인을 입력해주세요", errs.First("passwordConfirm"))
	})

	t.Run("each agreement required individually", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			field   string
			message string
			mutate  func(*authform.SignupForm)
		}{
			{"agreeToTerms", "이용약관에 동의해주세요", func(f *authform.SignupForm) { f.AgreeToTerms = false }},
			{"agreeToPrivacy", "개인정보처리방침에 동의해주세요", func(f *authform.SignupForm) { f.AgreeToPrivacy = false }},
			{"agreeToCommunity", "커뮤니티 운영정책에 동의해주세요", func(f *authform.SignupForm) { f.AgreeToCommunity = false }},
		}

		for _, tc := range cases {
			t.Run(tc.field, func(t *testing.T) {
				t.Parallel()
				form := validSignupForm()
				tc.mutate(&form)
				errs := validator.ExtractValidationErrors(form.Validate())
				require.NotNil(t, errs)
				assert.Equal(t, tc.message, errs.First(tc.field))
			})
		}
	})

	t.Run("nickname length capped at 20", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.Nickname = "가나다라마바사아자차카타파하가나다라마바사"
		errs := validator.ExtractValidationErrors(form.Validate())
		require.NotNil(t, errs)
		assert.Equal(t, "닉네임은 20자 이내로 입력해주세요", errs.First("nickname"))
	})

	t.Run("all violations reported in one atomic pass", func(t *testing.T) {
		t.Parallel()
		errs := validator.ExtractValidationErrors(authform.SignupForm{}.Validate())
		require.NotNil(t, errs)
		assert.ElementsMatch(t, []string{
			"email", "verificationCode", "password", "passwordConfirm",
			"nickname", "agreeToTerms", "agreeToPrivacy", "agreeToCommunity",
		}, errs.Fields())
	})
}

func TestResetPasswordFormValidate(t *testing.T) {
	t.Parallel()

	valid := authform.ResetPasswordForm{
		Email:              "user@example.com",
		VerificationCode:   "123456",
		NewPassword:        "Fresh123!",
		NewPasswordConfirm: "Fresh123!",
	}

	t.Run("valid form passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid.Validate())
	})

	t.Run("mismatch attaches to newPasswordConfirm", func(t *testing.T) {
		t.Parallel()
		form := valid
		form.NewPasswordConfirm = "Stale123!"
		errs := validator.ExtractValidationErrors(form.Validate())
		require.NotNil(t, errs)
		assert.Equal(t, "비밀번호가 서로 일치하지 않습니다", errs.First("newPasswordConfirm"))
	})

	t.Run("new password follows signup policy", func(t *testing.T) {
		t.Parallel()
		form := valid
		form.NewPassword = "short1!"
		form.NewPasswordConfirm = form.NewPassword
		errs := validator.ExtractValidationErrors(form.Validate())
		require.NotNil(t, errs)
		assert.True(t, errs.Has("newPassword"))
	})
}

func TestSignupReady(t *testing.T) {
	t.Parallel()

	openGate := authform.SignupGate{EmailVerified: true, NicknameChecked: true, NicknameAvailable: true}

	t.Run("everything satisfied", func(t *testing.T) {
		t.Parallel()
		assert.True(t, authform.SignupReady(validSignupForm(), openGate))
	})

	t.Run("verification states gate submission", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name string
			gate authform.SignupGate
		}{
			{"email not verified", authform.SignupGate{NicknameChecked: true, NicknameAvailable: true}},
			{"nickname unchecked", authform.SignupGate{EmailVerified: true, NicknameAvailable: true}},
			{"nickname taken", authform.SignupGate{EmailVerified: true, NicknameChecked: true}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				assert.False(t, authform.SignupReady(validSignupForm(), tc.gate))
			})
		}
	})

	t.Run("community agreement gates submission", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.AgreeToCommunity = false
		assert.False(t, authform.SignupReady(form, openGate))
	})

	t.Run("schema errors gate submission", func(t *testing.T) {
		t.Parallel()
		form := validSignupForm()
		form.Email = "broken"
		assert.False(t, authform.SignupReady(form, openGate))
	})
}

func TestSignupProgress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, authform.SignupProgress(false, false, false, false))
	assert.Equal(t, 25, authform.SignupProgress(true, false, false, false))
	assert.Equal(t, 50, authform.SignupProgress(true, true, false, false))
	assert.Equal(t, 75, authform.SignupProgress(true, true, true, false))
	assert.Equal(t, 100, authform.SignupProgress(true, true, true, true))
}

func TestFirstMessageAndErrorCount(t *testing.T) {
	t.Parallel()

	err := authform.LoginForm{}.Validate()
	assert.Equal(t, "이메일을 입력해주세요", authform.FirstMessage(err))
	assert.Equal(t, 2, authform.ErrorCount(err))

	assert.Equal(t, "", authform.FirstMessage(nil))
	assert.Equal(t, 0, authform.ErrorCount(nil))
}

func TestEmailDomainSuggestions(t *testing.T) {
	t.Parallel()

	t.Run("partial local part gets every provider", func(t *testing.T) {
		t.Parallel()
		got := authform.EmailDomainSuggestions("plant")
		assert.Equal(t, []string{
			"plant@gmail.com",
			"plant@naver.com",
			"plant@daum.net",
			"plant@kakao.com",
			"plant@outlook.com",
			"plant@yahoo.com",
			"plant@hotmail.com",
		}, got)
	})

	t.Run("empty input still suggests", func(t *testing.T) {
		t.Parallel()
		got := authform.EmailDomainSuggestions("")
		assert.Len(t, got, 7)
		assert.Equal(t, "@gmail.com", got[0])
	})

	t.Run("no suggestions once a domain is being typed", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, authform.EmailDomainSuggestions("plant@"))
		assert.Nil(t, authform.EmailDomainSuggestions("plant@nav"))
		assert.Nil(t, authform.EmailDomainSuggestions("plant@naver.com"))
	})
}
