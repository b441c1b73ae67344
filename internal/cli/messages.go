// messages.go contains the Arabic texts shown during study and attempts.

package cli

// Screen titles.
const (
	msgChunksTitle = "الأجزاء"
	msgStudyTitle  = "وضع الدراسة - %s"
	msgExamTitle   = "الاختبار الشامل"
	msgQuizTitle   = "اختبار - %s"
	msgQuizChunk   = "اختبار - الجزء %d"
	msgFinalTitle  = "النتيجة النهائية"
)

// Attempt flow.
const (
	msgProgress      = "السؤال %d من %d"
	msgChunkSummary  = "المحاضرات %s، %d سؤال"
	msgCorrect       = "✅ إجابة صحيحة!"
	msgIncorrect     = "❌ إجابة خاطئة. الإجابة الصحيحة: %s"
	msgCorrectAnswer = "الإجابة الصحيحة: %s"
	msgScore         = "الدرجة: %d / %d (%d%%)، خاطئة: %d"
	msgPrompt        = "إجابتك (1-%d، q للخروج): "
	msgInvalidChoice = "أدخل رقما من 1 إلى %d."
	msgProgressSaved = "تم حفظ التقدم. تابع بالأمر \"imtihan resume\"."
	msgAlreadyDone   = "المحاولة المحفوظة مكتملة."
	msgCompleted     = "مكتملة"
	msgAnswered      = "تمت الإجابة على %d من %d سؤال"
	msgStartedAt     = "بدأت في %s"
	msgSessionReset  = "تم حذف الجلسة المحفوظة."
)

// Question bank checks.
const (
	msgBankOK         = "بنك الأسئلة سليم (%d سؤال)"
	msgBankProblem    = "السؤال %d (المحاضرة %d): %s"
	msgBankProblems   = "%d مشكلة في %d سؤال"
	msgValidateFailed = "فشل التحقق من بنك الأسئلة:\n%v\n"
)

// Error messages.
const (
	msgChunkNotFound  = "الجزء غير موجود. اعرض الأجزاء بالأمر \"imtihan chunks\"."
	msgNoQuestions    = "لا توجد أسئلة في هذا الاختيار."
	msgNoSavedSession = "لا توجد جلسة محفوظة. ابدأ بالأمر \"imtihan quiz <chunk>\" أو \"imtihan exam\"."
	msgInternalError  = "حدث خطأ: %v\n"
)
