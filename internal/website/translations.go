package website

import "github.com/vittin/site/pkg/i18n"

// Supported page-chrome locales. Catalog content is not translated.
const (
	LocalePT = "pt-BR"
	LocaleEN = "en"
)

var ptBR = map[string]string{
	"page.title":       "VITTIN | Da Terra ao Espaço",
	"page.description": "Engenharia, fósseis e cosmos explicados com curiosidade e exatidão.",
	"skip":             "Pular para o conteúdo",

	"nav.main":              "Navegação principal",
	"nav.series":            "Séries",
	"nav.about":             "Sobre",
	"nav.resources":         "Recursos",
	"nav.subscribe":         "Assinar",
	"nav.subscribe_youtube": "Assinar no YouTube",
	"nav.menu_open":         "Abrir menu",
	"nav.menu_close":        "Fechar menu",
	"nav.home":              "VITTIN, voltar ao início",

	"hero.badge":         "Ciência • Engenharia • História",
	"hero.title_1":       "VITTIN",
	"hero.title_2":       "DA TERRA",
	"hero.title_3":       "AO ESPAÇO",
	"hero.subtitle":      "Engenharia, fósseis e cosmos explicados com curiosidade e exatidão. Uma jornada do núcleo terrestre às galáxias distantes.",
	"hero.cta_subscribe": "Assinar Agora",
	"hero.cta_series":    "Ver Séries",
	"hero.presenter_alt": "Vittin Apresentador",
	"hero.latest":        "Último Vídeo",
	"hero.scroll":        "Explorar",

	"themes.title": "TEMAS",
	"themes.text":  "Uma abordagem multidisciplinar para entender como o mundo foi construído e para onde estamos indo.",

	"videos.title":   "Últimos Vídeos",
	"videos.channel": "Ver canal completo",
	"videos.views":   "%1 views",
	"videos.watch":   "Assistir: %1",

	"about.title":     "O CRIADOR",
	"about.image_alt": "Quem é Vittin?",
	"about.text":      "Apaixonado por entender como as coisas funcionam, sejam máquinas modernas ou ecossistemas pré-históricos. VITTIN nasceu da vontade de conectar a engenharia bruta com a ciência pura.",

	"newsletter.title":       "BOLETIM CIENTÍFICO",
	"newsletter.text":        "Receba resumos dos vídeos, referências bibliográficas e downloads de modelos 3D exclusivos toda semana.",
	"newsletter.label":       "E-mail",
	"newsletter.placeholder": "Seu melhor e-mail",
	"newsletter.submit":      "Inscrever",
	"newsletter.ok":          "Inscrição recebida! Até o próximo boletim.",
	"newsletter.required":    "Informe seu e-mail.",
	"newsletter.invalid":     "E-mail inválido.",
	"newsletter.too_long":    "E-mail muito longo.",
	"resources.title":        "Recursos do canal",

	"footer.copyright": "© %1 VITTIN. Engenharia, Ciência e Exploração.",
	"footer.rights":    "Todos os direitos reservados.",
	"footer.social":    "Redes sociais",

	"chat.open":        "Abrir chat com o VITTIN BOT",
	"chat.close":       "Fechar chat",
	"chat.title":       "VITTIN BOT",
	"chat.online":      "Online",
	"chat.offline":     "Offline",
	"chat.greeting":    "Olá! Sou o VITTIN BOT 🤖 Pergunte sobre engenharia, dinossauros ou o cosmos!",
	"chat.log":         "Conversa com o VITTIN BOT",
	"chat.input_label": "Mensagem para o VITTIN BOT",
	"chat.placeholder": "Pergunte algo...",
	"chat.send":        "Enviar",
	"chat.typing":      "Processando...",
}

var en = map[string]string{
	"page.title":       "VITTIN | From Earth to Space",
	"page.description": "Engineering, fossils and the cosmos explained with curiosity and accuracy.",
	"skip":             "Skip to content",

	"nav.main":              "Main navigation",
	"nav.series":            "Series",
	"nav.about":             "About",
	"nav.resources":         "Resources",
	"nav.subscribe":         "Subscribe",
	"nav.subscribe_youtube": "Subscribe on YouTube",
	"nav.menu_open":         "Open menu",
	"nav.menu_close":        "Close menu",
	"nav.home":              "VITTIN, back to top",

	"hero.badge":         "Science • Engineering • History",
	"hero.title_1":       "VITTIN",
	"hero.title_2":       "FROM EARTH",
	"hero.title_3":       "TO SPACE",
	"hero.subtitle":      "Engineering, fossils and the cosmos explained with curiosity and accuracy. A journey from the Earth's core to distant galaxies.",
	"hero.cta_subscribe": "Subscribe Now",
	"hero.cta_series":    "See Series",
	"hero.presenter_alt": "Vittin, presenter",
	"hero.latest":        "Latest Video",
	"hero.scroll":        "Explore",

	"themes.title": "TOPICS",
	"themes.text":  "A multidisciplinary take on how the world was built and where we are heading.",

	"videos.title":   "Latest Videos",
	"videos.channel": "See the full channel",
	"videos.views":   "%1 views",
	"videos.watch":   "Watch: %1",

	"about.title":     "THE CREATOR",
	"about.image_alt": "Who is Vittin?",
	"about.text":      "Driven to understand how things work, from modern machines to prehistoric ecosystems. VITTIN was born to connect hard engineering with pure science.",

	"newsletter.title":       "SCIENCE BULLETIN",
	"newsletter.text":        "Get video summaries, bibliographic references and exclusive 3D model downloads every week.",
	"newsletter.label":       "Email",
	"newsletter.placeholder": "Your best email",
	"newsletter.submit":      "Subscribe",
	"newsletter.ok":          "Subscription received! See you in the next bulletin.",
	"newsletter.required":    "Please enter your email.",
	"newsletter.invalid":     "Invalid email address.",
	"newsletter.too_long":    "Email address is too long.",
	"resources.title":        "Channel resources",

	"footer.copyright": "© %1 VITTIN. Engineering, Science and Exploration.",
	"footer.rights":    "All rights reserved.",
	"footer.social":    "Social networks",

	"chat.open":        "Open chat with VITTIN BOT",
	"chat.close":       "Close chat",
	"chat.title":       "VITTIN BOT",
	"chat.online":      "Online",
	"chat.offline":     "Offline",
	"chat.greeting":    "Hi! I'm VITTIN BOT 🤖 Ask me about engineering, dinosaurs or the cosmos!",
	"chat.log":         "Conversation with VITTIN BOT",
	"chat.input_label": "Message to VITTIN BOT",
	"chat.placeholder": "Ask something...",
	"chat.send":        "Send",
	"chat.typing":      "Processing...",
}

// NewBundle returns the page-chrome translations with pt-BR as default and fallback.
func NewBundle() *i18n.Bundle {
	b := i18n.NewBundle(LocalePT)
	b.AddTranslations(LocalePT, ptBR)
	b.AddTranslations(LocaleEN, en)
	return b
}
