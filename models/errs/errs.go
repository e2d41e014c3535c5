package errs

import "github.com/pkg/errors"

// Типизированные ошибки ядра. Обработчики возвращают их как есть,
// контроллеры через errors.Is отображают в http статусы.
var (
	ErrNotFound           = errors.New("запись не найдена или удалена")
	ErrForbidden          = errors.New("операция недоступна")
	ErrInvalidApproval    = errors.New("некорректные данные заявки на согласование")
	ErrInvalidAction      = errors.New("недопустимое решение по заявке")
	ErrUnknownSubjectType = errors.New("неизвестный тип сущности")
)

// IsDomain сообщает, относится ли ошибка к прикладной таксономии,
// а не к инфраструктурному сбою
func IsDomain(err error) bool {
	for _, domainErr := range []error{
		ErrNotFound,
		ErrForbidden,
		ErrInvalidApproval,
		ErrInvalidAction,
		ErrUnknownSubjectType,
	} {
		if errors.Is(err, domainErr) {
			return true
		}
	}
	return false
}
