package telegram

const (
	internalErrMsg        string = "something went wrong..."
	welcomeMsg            string = "Welcome to the bookstore! Send /login to sign in, /help for the full list of commands."
	helpMsg               string = "Sign in with /login, then pick books in the catalog: tick the ones you want, set the number of copies and press \"add to cart\". Check out from the cart screen.\n\nLink an email with /email to receive a receipt after every purchase.\n\n/logout ends your session."
	usernamePromptMsg     string = "enter your username:"
	passwordPromptMsg     string = "enter your password:"
	invalidCredentialsMsg string = "invalid credentials, send /login to try again"
	notLoggedInMsg        string = "you are not logged in, send /login first"
	quantityPromptMsg     string = "enter the number of copies:"
	quantityNotANumber    string = "the number of copies must be a whole number, try again:"
	addToCartFailedMsg    string = "couldn't move your selection to the cart, please try again"
	checkoutOkMsg         string = "purchase completed, thank you!"
	checkoutFailedMsg     string = "checkout failed, please try again"
	loggedOutMsg          string = "you are logged out"
	emailPromptMsg        string = "enter the email address for purchase receipts:"
	emailLinkedMsg        string = "email linked successfully"
	emailDeletedMsg       string = "email deleted successfully"
)
