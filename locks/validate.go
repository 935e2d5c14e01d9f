package locks

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// lockNameRule: at most 260 characters, none of < > % & : \ ? /.
const lockNameRule = `required,max=260,excludesall=<>%&:\?/`

// ValidateLock checks a lock body before it is sent.
func ValidateLock(lock ManagementLockObject) error {
	if err := validate.Struct(lock); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLock, describe(err))
	}
	return nil
}

// ValidateLockName checks a lock name before it is used in a path.
func ValidateLockName(name string) error {
	if err := validate.Var(name, lockNameRule); err != nil {
		return fmt.Errorf("%w: name %q: %s", ErrInvalidLock, name, describe(err))
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := fe.Namespace()
	if field == "" {
		field = "value"
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
