package book_appointment

import "errors"

var (
	// ErrNoPsychologist возвращается, когда психолог не выбран
	ErrNoPsychologist = errors.New("book_appointment: no psychologist selected")

	// ErrInvalidDate возвращается, когда дата не выбрана или не парсится
	ErrInvalidDate = errors.New("book_appointment: invalid appointment date")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("book_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("book_appointment: date is too far in the future")

	// ErrNoSlot возвращается, когда слот не выбран или имеет некорректный формат
	ErrNoSlot = errors.New("book_appointment: no time slot selected")

	// ErrLocalConflict возвращается, когда у пользователя уже есть активная
	// запись на этот день и слот - сеть при этом не трогается
	ErrLocalConflict = errors.New("book_appointment: conflicting appointment exists")

	// ErrReasonRequired возвращается, когда политика требует указать причину
	ErrReasonRequired = errors.New("book_appointment: reason is required")

	// ErrReasonTooLong возвращается при превышении лимита длины причины
	ErrReasonTooLong = errors.New("book_appointment: reason is too long")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая еще не завершилась (защита от двойного клика)
	ErrSubmissionInFlight = errors.New("book_appointment: submission already in flight")

	// ErrSlotConflict возвращается при 409 от сервера: слот перехвачен другим
	// бронированием, доступность сброшена и требует перезапроса
	ErrSlotConflict = errors.New("book_appointment: slot was taken by another booking")

	// ErrPsychologistNotFound возвращается при 404: выбранный психолог больше
	// не существует
	ErrPsychologistNotFound = errors.New("book_appointment: psychologist not found")

	// ErrRejectedByServer возвращается при 400: сервер отклонил данные,
	// обертка содержит его сообщение
	ErrRejectedByServer = errors.New("book_appointment: rejected by server")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
