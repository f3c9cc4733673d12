package companion

// Greeting opens every conversation.
const Greeting = "Namaste! I'm UmeedConnect, your 24/7 mental health companion for J&K students. " +
	"I work even with low bandwidth and can help you access government crisis helplines, " +
	"TeleManas services, and local support. How can I support you today?"

// QuickReplies are offered as one-key shortcuts.
var QuickReplies = []string{
	"I need crisis help",
	"TeleManas support",
	"Feeling anxious",
	"Connect with mentor",
	"SMS reminders",
}

const fallbackReply = "Thank you for reaching out to UmeedConnect. Every feeling is valid, and seeking support shows courage.\n\n" +
	"Government Support: TeleManas 14416\n" +
	"Peer Mentors: Available 24/7\n" +
	"SMS Support: Works without internet\n" +
	"Wellness Tools: Downloadable for offline use\n\n" +
	"What type of support would help you most right now?"

// DefaultTopics returns the canned topics in priority order; crisis first.
func DefaultTopics() []Topic {
	return []Topic{
		{
			Name:     "crisis",
			Keywords: []string{"crisis", "emergency", "harm", "suicide"},
			Reply: "IMMEDIATE HELP AVAILABLE:\n\n" +
				"TeleManas (Govt): 14416\n" +
				"Suicide Prevention: 9152987821\n" +
				"KIRAN Helpline: 1800-599-0019\n" +
				"Emergency Services: 112\n" +
				"J&K Police Helpline: 0194-2440040\n\n" +
				"You can also SMS \"HELP\" to 9419018073 for immediate callback. You matter and help is available 24/7.",
		},
		{
			Name:     "telemanas",
			Keywords: []string{"telemanas", "government", "govt"},
			Reply: "TeleManas is the Government of India's mental health helpline:\n\n" +
				"Call: 14416 (24/7 Free)\n" +
				"Available in Hindi, English & regional languages\n" +
				"SMS support available\n" +
				"Can connect you to nearest govt mental health facility\n\n" +
				"Would you like me to help you prepare for the call or provide more government mental health schemes?",
		},
		{
			Name:     "sms",
			Keywords: []string{"sms", "reminder", "notification"},
			Reply: "SMS Services (No internet needed):\n\n" +
				"- Daily wellness check-ins\n" +
				"- Appointment reminders\n" +
				"- Medication alerts\n" +
				"- Crisis support numbers\n" +
				"- Breathing exercise prompts\n\n" +
				"SMS \"START\" to 9419018073 to activate. Works even when internet is down in remote J&K areas.",
		},
		{
			Name:     "offline",
			Keywords: []string{"offline", "bandwidth", "internet"},
			Reply: "Low Bandwidth Features:\n\n" +
				"- Offline chatbot responses (cached)\n" +
				"- SMS-based support system\n" +
				"- Text-only resource guides\n" +
				"- Emergency contacts saved locally\n\n" +
				"UmeedConnect works for you even in remote J&K areas!",
		},
		{
			Name:     "anxiety",
			Keywords: []string{"anxious", "anxiety"},
			Reply: "I understand anxiety can be overwhelming. Here's immediate help:\n\n" +
				"Try 4-7-8 breathing (works offline)\n" +
				"Connect with J&K peer mentors\n" +
				"TeleManas: 14416 for professional support\n\n" +
				"Would you like me to guide you through a quick breathing exercise or connect you with local support?",
		},
		{
			Name:     "mentor",
			Keywords: []string{"mentor", "peer", "student"},
			Reply: "J&K Student Peer Support:\n\n" +
				"- Connect with mentors from your region\n" +
				"- Language support (Hindi, Urdu, Kashmiri, Dogri)\n" +
				"- Cultural understanding of local challenges\n" +
				"- Available via chat, call, or SMS\n\n" +
				"Would you like to browse mentors or get matched automatically?",
		},
	}
}
