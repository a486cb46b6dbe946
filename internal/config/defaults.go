package config

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultCalculatorURL = "https://accountingcalculator-37edb.web.app"
	DefaultButtonCaption = "Call calculator"

	DefaultDBPath = "storage.db"

	// Cron schedules use the standard five-field form.
	DefaultFeedbackCleanupSchedule = "0 4 * * *"
	DefaultSQLMaintenanceSchedule  = "30 4 * * 0"
)

// Default user-facing reply texts.
const (
	DefaultMsgWelcome = "Hi!\n\n" +
		"This bot uses the Accounting Calculator to store the history of your calculations.\n\n" +
		"Commands:\n" +
		"/help\n" +
		"/calc - show a keyboard button to call the web app calculator.\n" +
		"/feedback <some text> - send a message to the admin. Type the text on the same line as the command.\n"

	DefaultMsgHelp = "The bot can be used to store the history of private calculations.\n\n" +
		"/help\n" +
		"/calc - show a keyboard button to call the web app calculator.\n" +
		"/feedback <some text> - send a message to the admin. Type the text on the same line as the command.\n"

	DefaultMsgCalcPrompt      = "Press the button to call the web calculator"
	DefaultMsgFeedbackThanks  = "Thank you for your feedback!"
	DefaultMsgProvideFeedback = "Please type your feedback on the same line as the command, e.g. /feedback great bot"
	DefaultMsgGeneralError    = "An error occurred. Please try again later."
)
