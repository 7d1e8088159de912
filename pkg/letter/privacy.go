package letter

// PrivacyNotice is shown next to the letter form.
const PrivacyNotice = "Your privacy is important to us. All information you enter is processed " +
	"to generate your letter and is never stored on our servers. Nothing is saved " +
	"once your letter is downloaded or copied, and clearing the form removes every value you typed."

// Clear discards every entered value and returns a fresh default record.
func Clear(opts ...Option) Data {
	return NewData(opts...)
}
