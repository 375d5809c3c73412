package metrics

const Namespace = "procuradoria"
