package disc

import "strings"

// questionBank maps each behavioral skill of the catalog to its 4 interview
// questions. Static reference data, loaded once; nothing mutates it at
// runtime. Lookup is by normalized name (trim + lowercase).
var questionBank = map[string][]string{
	"comunicação": {
		"Conte sobre uma situação em que você precisou explicar algo complexo para alguém sem conhecimento no assunto. Como fez isso?",
		"Como você garante que a sua mensagem foi compreendida pelo outro lado?",
		"Descreva um momento em que uma falha de comunicação gerou um problema. O que você aprendeu?",
		"Você prefere comunicar más notícias pessoalmente ou por escrito? Por quê?",
	},
	"comunicação eficaz": {
		"Dê um exemplo de uma apresentação ou conversa difícil que você conduziu com sucesso.",
		"Como você adapta a sua forma de se comunicar para públicos diferentes?",
		"Conte sobre uma vez em que ouvir com atenção mudou a sua decisão.",
		"O que você faz quando percebe que não está sendo compreendido?",
	},
	"trabalho em equipe": {
		"Descreva um projeto em que o resultado dependeu do esforço de todo o grupo. Qual foi o seu papel?",
		"Como você lida com um colega que não está entregando a parte dele?",
		"Conte sobre um conflito dentro de uma equipe e como ele foi resolvido.",
		"O que você faz quando discorda da decisão da maioria?",
	},
	"resiliência": {
		"Conte sobre o maior obstáculo profissional que você já enfrentou. Como superou?",
		"Descreva uma situação em que você recebeu um 'não' importante. O que fez depois?",
		"Como você se recupera após um erro que teve consequências visíveis?",
		"O que você faz para manter o ânimo em períodos longos de pressão?",
	},
	"liderança": {
		"Descreva uma situação em que você assumiu a liderança sem ter sido designado para isso.",
		"Como você motiva pessoas com perfis muito diferentes do seu?",
		"Conte sobre uma decisão impopular que você precisou tomar como líder.",
		"Como você desenvolve as pessoas da sua equipe?",
	},
	"proatividade": {
		"Dê um exemplo de um problema que você resolveu antes que alguém pedisse.",
		"Conte sobre uma melhoria que você propôs e implementou por iniciativa própria.",
		"Como você identifica oportunidades de agir sem esperar instruções?",
		"Descreva uma vez em que a sua antecipação evitou um problema maior.",
	},
	"organização": {
		"Como você organiza as suas tarefas quando tudo parece urgente?",
		"Descreva o seu método para acompanhar prazos e compromissos.",
		"Conte sobre uma situação em que a falta de organização causou um problema. O que mudou depois?",
		"Como você decide o que fazer primeiro em um dia cheio?",
	},
	"criatividade": {
		"Conte sobre a solução mais criativa que você já deu para um problema de trabalho.",
		"Como você busca ideias novas quando o caminho óbvio não funciona?",
		"Descreva uma vez em que uma ideia sua foi rejeitada. Como reagiu?",
		"O que você faz para sair do piloto automático nas suas atividades?",
	},
	"adaptabilidade": {
		"Descreva uma mudança brusca de planos que você precisou absorver. Como lidou?",
		"Conte sobre uma vez em que você precisou aprender algo novo em pouco tempo.",
		"Como você reage quando as prioridades mudam no meio de um projeto?",
		"Dê um exemplo de uma situação fora da sua zona de conforto em que você se saiu bem.",
	},
	"empatia": {
		"Conte sobre uma situação em que entender o ponto de vista do outro mudou a sua atitude.",
		"Como você percebe quando um colega está passando por dificuldades?",
		"Descreva uma vez em que você precisou dar um feedback difícil com cuidado.",
		"O que você faz para acolher alguém novo na equipe?",
	},
	"pensamento crítico": {
		"Descreva uma situação em que você questionou uma prática estabelecida. Qual foi o resultado?",
		"Como você avalia se uma informação é confiável antes de usá-la?",
		"Conte sobre uma decisão em que você mudou de opinião diante de novos dados.",
		"O que você faz quando os dados apontam em uma direção e a intuição em outra?",
	},
	"resolução de problemas": {
		"Conte sobre o problema mais difícil que você já resolveu no trabalho. Qual foi a sua abordagem?",
		"Como você age quando não sabe por onde começar a resolver algo?",
		"Descreva uma situação em que a primeira solução não funcionou. O que fez em seguida?",
		"Como você decide entre uma solução rápida e uma solução definitiva?",
	},
	"negociação": {
		"Descreva uma negociação em que os dois lados saíram satisfeitos. Como chegou lá?",
		"Conte sobre uma vez em que você precisou ceder em algo importante. Como decidiu?",
		"Como você se prepara para uma conversa de negociação?",
		"O que você faz quando a outra parte não quer ceder em nada?",
	},
	"gestão de tempo": {
		"Como você divide o seu tempo quando tem mais demandas do que horas disponíveis?",
		"Conte sobre uma vez em que você perdeu um prazo. O que aprendeu?",
		"Que técnicas você usa para evitar distrações no trabalho?",
		"Como você estima o tempo necessário para uma tarefa nova?",
	},
	"atenção aos detalhes": {
		"Conte sobre um erro pequeno que você encontrou e que teria causado um problema grande.",
		"Como você confere o seu trabalho antes de entregá-lo?",
		"Descreva uma atividade sua em que precisão é indispensável.",
		"Como você equilibra atenção aos detalhes com velocidade de entrega?",
	},
	"inteligência emocional": {
		"Conte sobre uma situação em que você precisou controlar uma reação impulsiva.",
		"Como você lida com críticas ao seu trabalho?",
		"Descreva um momento de tensão em que você ajudou a acalmar o ambiente.",
		"O que você faz quando percebe que está estressado demais para decidir bem?",
	},
	"tomada de decisão": {
		"Descreva a decisão mais difícil que você tomou com informações incompletas.",
		"Como você envolve outras pessoas nas suas decisões?",
		"Conte sobre uma decisão sua que se mostrou errada. Como corrigiu o rumo?",
		"O que pesa mais nas suas decisões: dados, experiência ou opinião do grupo?",
	},
	"colaboração": {
		"Conte sobre uma entrega que só foi possível com ajuda de outra área ou equipe.",
		"Como você compartilha conhecimento com os seus colegas?",
		"Descreva uma vez em que você abriu mão de crédito pessoal em favor do grupo.",
		"O que você faz quando precisa da colaboração de alguém muito ocupado?",
	},
}

// fallbackQuestions pads the selection when a posting's skills and extra
// questions do not reach the minimum. Generic by design, appended in order.
var fallbackQuestions = []string{
	"Por que você se interessou por esta vaga?",
	"O que você considera o seu maior ponto forte profissional?",
	"E o que você considera o seu maior ponto de melhoria?",
	"Onde você se vê daqui a cinco anos?",
	"Conte sobre uma conquista profissional da qual você se orgulha.",
	"Como você lida com prazos apertados?",
	"Descreva o ambiente de trabalho em que você mais produz.",
	"O que você faz para continuar aprendendo na sua área?",
	"Como colegas de trabalho anteriores descreveriam você?",
	"Conte sobre um feedback que mudou a sua forma de trabalhar.",
	"O que não pode faltar em uma empresa para você permanecer nela?",
	"Há algo que não perguntamos e que você gostaria de contar?",
}

// DefaultSkills are the names callers use to pad a posting's skill list up
// to 3 before selection. Padding is the caller's responsibility, not the
// selector's.
var DefaultSkills = []string{"Comunicação", "Trabalho em Equipe", "Resiliência"}

func normalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
