package fixtures

const (
	ValidStudentEmail   = "student@kku.ac.kr"
	AnotherStudentEmail = "gildong.hong@kku.ac.kr"
	ValidExternalEmail  = "student@gmail.com"

	ValidName          = "홍길동"
	ValidStudentNumber = "202312345"
	ValidPassword      = "correct-horse42"
	WrongPassword      = "wrong-password99"

	ValidVerificationCode = "483920"
	WrongVerificationCode = "000000"
)
